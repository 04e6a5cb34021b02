package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

const (
	rule           = "============================================================"
	separator      = "------------------------------------------------------------"
	maxSuggestions = 3
)

// entry is one numbered menu choice
type entry struct {
	key    string
	label  string
	action func(m *Menu) error
}

var entries = []entry{
	{"1", "List all items", (*Menu).listAll},
	{"2", "List available items", (*Menu).listAvailable},
	{"3", "Search by title", (*Menu).searchTitle},
	{"4", "Search by ID", (*Menu).searchID},
	{"5", "Borrow an item", (*Menu).borrow},
	{"6", "Return an item", (*Menu).giveBack},
	{"7", "Add a new item", (*Menu).addItem},
	{"8", "Statistics", (*Menu).statistics},
	{"9", "Search by creator", (*Menu).searchCreator},
	{"10", "Rename an item", (*Menu).rename},
	{"0", "Exit", nil},
}

// Menu is the numbered text interface over a catalog.
// It reads one answer per line from in and writes everything to out.
type Menu struct {
	cat    *catalog.Catalog
	search *search.Service
	in     *bufio.Reader
	out    io.Writer
	locale domain.Locale
	logger *slog.Logger
}

// Option configures a Menu
type Option func(*Menu)

// WithLocale sets the locale used for item summaries and outcomes
func WithLocale(loc domain.Locale) Option {
	return func(m *Menu) { m.locale = loc }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a menu over cat. svc may be nil, which disables suggestions
// and creator search.
func New(cat *catalog.Catalog, svc *search.Service, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		cat:    cat,
		search: svc,
		in:     bufio.NewReader(in),
		out:    out,
		locale: domain.LocaleEnglish,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
// End of input is a normal exit.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.prompt(fmt.Sprintf("Choose (0-%d): ", len(entries)-1))
		if err != nil {
			return m.finish(err)
		}

		e, ok := lookup(choice)
		if !ok {
			m.println(styles.ErrorStyle.Render("Invalid choice, please try again."))
			continue
		}
		if e.action == nil {
			m.printf("\nThank you for using %s!\n", m.cat.Name())
			return nil
		}

		m.logger.Debug("menu action", "choice", e.key, "label", e.label)
		if err := e.action(m); err != nil {
			return m.finish(err)
		}
	}
}

func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Info("input closed")
		return nil
	}
	return err
}

func lookup(choice string) (entry, bool) {
	for _, e := range entries {
		if e.key == choice {
			return e, true
		}
	}
	return entry{}, false
}

func (m *Menu) printMenu() {
	m.println()
	m.println(rule)
	m.println(styles.TitleStyle.Render("LIBRARY MANAGEMENT SYSTEM - " + m.cat.Name()))
	m.println(rule)
	for _, e := range entries {
		m.printf("%2s. %s\n", e.key, e.label)
	}
	m.println(rule)
}

// === Actions ===

func (m *Menu) listAll() error {
	seq, ok := m.cat.All()
	if !ok {
		m.println("\nThe catalog is empty.")
		return nil
	}
	m.printItems("Items in "+m.cat.Name(), seq)
	return nil
}

func (m *Menu) listAvailable() error {
	seq, ok := m.cat.Available()
	if !ok {
		m.println("\nNo items are available right now.")
		return nil
	}
	m.printItems("Available in "+m.cat.Name(), seq)
	return nil
}

func (m *Menu) searchTitle() error {
	query, err := m.prompt("Title to search for: ")
	if err != nil {
		return err
	}

	results := m.cat.SearchByTitle(query)
	if len(results) == 0 {
		m.printf("\nNo item found with title '%s'\n", query)
		m.printSuggestions(query)
		return nil
	}
	m.printItems(fmt.Sprintf("Search results: '%s'", query), slices.Values(results))
	return nil
}

func (m *Menu) searchID() error {
	id, err := m.prompt("Item ID: ")
	if err != nil {
		return err
	}

	item, ok := m.cat.SearchByID(id)
	if !ok {
		m.printOutcome(domain.Outcome{Result: domain.ResultNotFound, ID: id})
		return nil
	}
	m.printHeader(fmt.Sprintf("Item found (ID: %s)", id))
	m.println(item.RenderIn(m.locale))
	return nil
}

func (m *Menu) borrow() error {
	id, err := m.prompt("ID of the item to borrow: ")
	if err != nil {
		return err
	}
	m.printOutcome(m.cat.Borrow(id))
	return nil
}

func (m *Menu) giveBack() error {
	id, err := m.prompt("ID of the item to return: ")
	if err != nil {
		return err
	}
	m.printOutcome(m.cat.Return(id))
	return nil
}

func (m *Menu) statistics() error {
	s := m.cat.Statistics()

	m.printHeader("Statistics for " + m.cat.Name())
	m.printf("Total items:     %d\n", s.Total)
	m.printf("Available items: %d\n", s.Available)
	m.printf("Borrowed items:  %d\n", s.Borrowed)
	m.println("\nBy type:")
	for _, k := range domain.Kinds {
		m.printf("  - %s: %d\n", m.locale.KindName(k), s.CountOf(k))
	}
	m.println(rule)
	return nil
}

func (m *Menu) searchCreator() error {
	if m.search == nil {
		m.println(styles.ErrorStyle.Render("Creator search is not available."))
		return nil
	}

	query, err := m.prompt("Author, publisher or director: ")
	if err != nil {
		return err
	}

	results := m.search.ByCreator(query)
	if len(results) == 0 {
		m.printf("\nNo item found by '%s'\n", query)
		return nil
	}
	m.printItems(fmt.Sprintf("Items by '%s'", query), slices.Values(results))
	return nil
}

func (m *Menu) rename() error {
	id, err := m.prompt("ID of the item to rename: ")
	if err != nil {
		return err
	}
	title, err := m.prompt("New title: ")
	if err != nil {
		return err
	}

	out, err := m.cat.Rename(id, title)
	if err != nil {
		m.printError(err)
		return nil
	}
	m.printOutcome(out)
	return nil
}

// === Output helpers ===

func (m *Menu) printItems(heading string, items iter.Seq[domain.Item]) {
	m.printHeader(heading)
	for item := range items {
		m.println(item.RenderIn(m.locale))
		m.println(separator)
	}
}

func (m *Menu) printSuggestions(query string) {
	if m.search == nil {
		return
	}
	suggestions := m.search.Suggest(query, maxSuggestions)
	if len(suggestions) == 0 {
		return
	}
	m.println(styles.DimStyle.Render("Did you mean:"))
	for _, s := range suggestions {
		m.printf("  %s (ID: %s)\n", styles.Highlight(s.Title, s.MatchedIndexes), s.Item.ID())
	}
}

func (m *Menu) printHeader(heading string) {
	m.println()
	m.println(rule)
	m.println(styles.AccentStyle.Render(heading))
	m.println(rule)
}

func (m *Menu) printOutcome(o domain.Outcome) {
	msg := m.locale.Message(o)
	if o.OK() {
		m.println(styles.SuccessStyle.Render(msg))
		return
	}
	m.println(styles.ErrorStyle.Render(msg))
}

func (m *Menu) printError(err error) {
	m.println(styles.ErrorStyle.Render("Error: " + err.Error()))
}

func (m *Menu) println(a ...any) {
	fmt.Fprintln(m.out, a...)
}

func (m *Menu) printf(format string, a ...any) {
	fmt.Fprintf(m.out, format, a...)
}

// === Input helpers ===

// prompt prints label and returns the trimmed answer. A final line without
// a trailing newline is still returned; io.EOF is only reported once input
// is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt asks until the answer parses as an integer
func (m *Menu) promptInt(label string) (int, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		m.println(styles.ErrorStyle.Render(fmt.Sprintf("'%s' is not a number, please try again.", answer)))
	}
}
