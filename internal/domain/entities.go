package domain

import (
	"fmt"
	"strconv"
	"sync"
)

// Kind distinguishes catalog item types
type Kind int

const (
	KindBook Kind = iota
	KindMagazine
	KindDVD
)

// Kinds lists every item kind in display order
var Kinds = []Kind{KindBook, KindMagazine, KindDVD}

// String returns the English kind name
func (k Kind) String() string {
	return LocaleEnglish.KindName(k)
}

// Tag returns the lowercase identifier used in config records ("book", "magazine", "dvd")
func (k Kind) Tag() string {
	switch k {
	case KindBook:
		return "book"
	case KindMagazine:
		return "magazine"
	case KindDVD:
		return "dvd"
	default:
		return "unknown"
	}
}

// ParseKind resolves a record tag back to a Kind
func ParseKind(tag string) (Kind, error) {
	for _, k := range Kinds {
		if k.Tag() == tag {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}

// record holds the state shared by every item kind.
// Borrow, Return and SetTitle live here and are not overridden.
// title and available are guarded by mu; id and year never change.
type record struct {
	id   string
	year int

	mu        sync.RWMutex
	title     string
	available bool
}

func checkTitle(title string) error {
	if title == "" {
		return emptyTitleError()
	}
	return nil
}

func (r *record) ID() string { return r.id }
func (r *record) Year() int  { return r.year }

func (r *record) Title() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title
}

func (r *record) Available() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.available
}

// SetTitle renames the item. An empty title is rejected and the old one kept.
func (r *record) SetTitle(title string) error {
	if err := checkTitle(title); err != nil {
		return err
	}
	r.mu.Lock()
	r.title = title
	r.mu.Unlock()
	return nil
}

// Borrow marks the item as lent out. Borrowing an item that is already out
// is reported through the outcome, not an error.
func (r *record) Borrow() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.available {
		return Outcome{Result: ResultUnavailable, ID: r.id, Title: r.title}
	}
	r.available = false
	return Outcome{Result: ResultBorrowed, ID: r.id, Title: r.title}
}

// Return puts the item back on the shelf. Returning an available item succeeds.
func (r *record) Return() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = true
	return Outcome{Result: ResultReturned, ID: r.id, Title: r.title}
}

func (r *record) sealed() {}

// state reads the mutable fields together so one rendering never mixes two states
func (r *record) state() (title string, available bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.title, r.available
}

// head returns the fields every kind renders first
func (r *record) head(k Kind, title string) []Field {
	return []Field{
		{Key: FieldID, Value: r.id},
		{Key: FieldKind, Value: k.Tag()},
		{Key: FieldTitle, Value: title},
	}
}

func (r *record) yearField() Field { return Field{Key: FieldYear, Value: strconv.Itoa(r.year)} }

func statusField(available bool) Field { return Field{Key: FieldStatus, Value: statusValue(available)} }

// Book is a catalogued book
type Book struct {
	record
	author string
	isbn   string
	pages  int
}

// NewBook creates an available book. The title must not be empty.
func NewBook(id, title string, year int, author, isbn string, pages int) (*Book, error) {
	if err := checkTitle(title); err != nil {
		return nil, err
	}
	return &Book{record: record{id: id, title: title, year: year, available: true}, author: author, isbn: isbn, pages: pages}, nil
}

func (b *Book) Author() string  { return b.author }
func (b *Book) ISBN() string    { return b.isbn }
func (b *Book) Pages() int      { return b.pages }
func (b *Book) Kind() Kind      { return KindBook }
func (b *Book) Creator() string { return b.author }

func (b *Book) Fields() []Field {
	title, available := b.state()
	return append(b.head(KindBook, title),
		Field{Key: FieldAuthor, Value: b.author},
		Field{Key: FieldISBN, Value: b.isbn},
		b.yearField(),
		Field{Key: FieldPages, Value: strconv.Itoa(b.pages)},
		statusField(available),
	)
}

func (b *Book) Render() string             { return LocaleEnglish.Render(b) }
func (b *Book) RenderIn(loc Locale) string { return loc.Render(b) }

// Magazine is a single magazine issue
type Magazine struct {
	record
	publisher string
	issue     string
	month     string
}

// NewMagazine creates an available magazine issue. The title must not be empty.
func NewMagazine(id, title string, year int, publisher, issue, month string) (*Magazine, error) {
	if err := checkTitle(title); err != nil {
		return nil, err
	}
	return &Magazine{record: record{id: id, title: title, year: year, available: true}, publisher: publisher, issue: issue, month: month}, nil
}

func (m *Magazine) Publisher() string { return m.publisher }
func (m *Magazine) Issue() string     { return m.issue }
func (m *Magazine) Month() string     { return m.month }
func (m *Magazine) Kind() Kind        { return KindMagazine }
func (m *Magazine) Creator() string   { return m.publisher }

func (m *Magazine) Fields() []Field {
	title, available := m.state()
	return append(m.head(KindMagazine, title),
		Field{Key: FieldPublisher, Value: m.publisher},
		Field{Key: FieldIssue, Value: m.issue},
		Field{Key: FieldMonth, Value: m.month},
		m.yearField(),
		statusField(available),
	)
}

func (m *Magazine) Render() string             { return LocaleEnglish.Render(m) }
func (m *Magazine) RenderIn(loc Locale) string { return loc.Render(m) }

// DVD is a film on disc
type DVD struct {
	record
	director string
	minutes  int
}

// NewDVD creates an available DVD. The title must not be empty.
func NewDVD(id, title string, year int, director string, minutes int) (*DVD, error) {
	if err := checkTitle(title); err != nil {
		return nil, err
	}
	return &DVD{record: record{id: id, title: title, year: year, available: true}, director: director, minutes: minutes}, nil
}

func (d *DVD) Director() string { return d.director }
func (d *DVD) Minutes() int     { return d.minutes }
func (d *DVD) Kind() Kind       { return KindDVD }
func (d *DVD) Creator() string  { return d.director }

func (d *DVD) Fields() []Field {
	title, available := d.state()
	return append(d.head(KindDVD, title),
		Field{Key: FieldDirector, Value: d.director},
		Field{Key: FieldDuration, Value: strconv.Itoa(d.minutes)},
		d.yearField(),
		statusField(available),
	)
}

func (d *DVD) Render() string             { return LocaleEnglish.Render(d) }
func (d *DVD) RenderIn(loc Locale) string { return loc.Render(d) }

// statusValue is the locale-neutral status carried in Fields; Locale.Render translates it
func statusValue(available bool) string {
	if available {
		return statusAvailable
	}
	return statusBorrowed
}

const (
	statusAvailable = "available"
	statusBorrowed  = "borrowed"
)
