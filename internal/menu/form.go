package menu

import (
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// addItem asks for the kind and fields of a new item and adds it.
// Numeric fields are re-asked until they parse; the title is validated by
// the item constructor.
func (m *Menu) addItem() error {
	m.println("\nItem type:")
	for i, k := range domain.Kinds {
		m.printf("%d. %s\n", i+1, m.locale.KindName(k))
	}
	choice, err := m.prompt("Choose type (1-3): ")
	if err != nil {
		return err
	}

	kind, ok := kindFromChoice(choice)
	if !ok {
		m.println(styles.ErrorStyle.Render("Invalid type!"))
		return nil
	}

	id, err := m.prompt("ID (blank to generate): ")
	if err != nil {
		return err
	}
	if id == "" {
		id = m.cat.NextID(kind)
		m.println(styles.DimStyle.Render("Using ID " + id))
	}

	title, err := m.prompt("Title: ")
	if err != nil {
		return err
	}
	year, err := m.promptInt("Year: ")
	if err != nil {
		return err
	}

	item, err := m.readKindFields(kind, id, title, year)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}

	m.printOutcome(m.cat.Add(item))
	return nil
}

// readKindFields asks for the kind-specific fields and builds the item.
// A nil item with a nil error means construction was rejected and reported.
func (m *Menu) readKindFields(kind domain.Kind, id, title string, year int) (domain.Item, error) {
	switch kind {
	case domain.KindBook:
		author, err := m.prompt("Author: ")
		if err != nil {
			return nil, err
		}
		isbn, err := m.prompt("ISBN: ")
		if err != nil {
			return nil, err
		}
		pages, err := m.promptInt("Pages: ")
		if err != nil {
			return nil, err
		}
		book, err := domain.NewBook(id, title, year, author, isbn, pages)
		if err != nil {
			m.printError(err)
			return nil, nil
		}
		return book, nil

	case domain.KindMagazine:
		publisher, err := m.prompt("Publisher: ")
		if err != nil {
			return nil, err
		}
		issue, err := m.prompt("Issue number: ")
		if err != nil {
			return nil, err
		}
		month, err := m.prompt("Month: ")
		if err != nil {
			return nil, err
		}
		mag, err := domain.NewMagazine(id, title, year, publisher, issue, month)
		if err != nil {
			m.printError(err)
			return nil, nil
		}
		return mag, nil

	default:
		director, err := m.prompt("Director: ")
		if err != nil {
			return nil, err
		}
		minutes, err := m.promptInt("Duration (minutes): ")
		if err != nil {
			return nil, err
		}
		dvd, err := domain.NewDVD(id, title, year, director, minutes)
		if err != nil {
			m.printError(err)
			return nil, nil
		}
		return dvd, nil
	}
}

func kindFromChoice(choice string) (domain.Kind, bool) {
	switch choice {
	case "1":
		return domain.KindBook, true
	case "2":
		return domain.KindMagazine, true
	case "3":
		return domain.KindDVD, true
	default:
		return 0, false
	}
}
