package tui

import (
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Column widths for the item table
const (
	idWidth      = 8
	kindWidth    = 9
	titleWidth   = 30
	creatorWidth = 22
	yearWidth    = 6
	statusWidth  = 10

	// header (name, rule, counts), filter, status and help lines
	chromeHeight = 6
)

// allKinds marks the kind filter as off
const allKinds = -1

// Model is the Bubble Tea model for the catalog browser
type Model struct {
	cat    *catalog.Catalog
	locale domain.Locale
	logger *slog.Logger
	keys   KeyMap

	// UI Components
	Table  table.Model
	Filter textinput.Model

	// View state
	Filtering     bool
	AvailableOnly bool
	KindFilter    int // index into domain.Kinds, or allKinds
	ShowDetail    bool

	// Items backing the table rows, row i is Rows[i]
	Rows []domain.Item

	// Dimensions
	Width  int
	Height int

	// Status line
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a browser over cat
func NewModel(cat *catalog.Catalog, locale domain.Locale, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "title"
	ti.CharLimit = 64
	ti.PromptStyle = styles.FilterPromptStyle
	ti.PlaceholderStyle = styles.DimStyle

	t := table.New(
		table.WithColumns(columns(locale)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(styles.TableStyles()),
	)

	m := Model{
		cat:        cat,
		locale:     locale,
		logger:     logger,
		keys:       DefaultKeyMap(),
		Table:      t,
		Filter:     ti,
		KindFilter: allKinds,
	}
	m.refresh()
	return m
}

func columns(loc domain.Locale) []table.Column {
	return []table.Column{
		{Title: loc.Label(domain.FieldID), Width: idWidth},
		{Title: loc.Label(domain.FieldKind), Width: kindWidth},
		{Title: loc.Label(domain.FieldTitle), Width: titleWidth},
		{Title: loc.CreatorLabel, Width: creatorWidth},
		{Title: loc.Label(domain.FieldYear), Width: yearWidth},
		{Title: loc.Label(domain.FieldStatus), Width: statusWidth},
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table.SetWidth(msg.Width)
		m.Table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case OutcomeMsg:
		m.StatusMsg = m.locale.Message(msg.Outcome)
		m.StatusIsErr = !msg.Outcome.OK()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.Filtering {
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Borrow):
		if item, ok := m.Selected(); ok {
			return m, BorrowCmd(m.cat, item.ID())
		}
		return m, nil

	case key.Matches(msg, m.keys.Return):
		if item, ok := m.Selected(); ok {
			return m, ReturnCmd(m.cat, item.ID())
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleAvailable):
		m.AvailableOnly = !m.AvailableOnly
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleKind):
		m.KindFilter++
		if m.KindFilter >= len(domain.Kinds) {
			m.KindFilter = allKinds
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.Filtering = true
		m.ShowDetail = false
		return m, m.Filter.Focus()

	case key.Matches(msg, m.keys.Detail):
		_, ok := m.Selected()
		m.ShowDetail = ok && !m.ShowDetail
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.ShowDetail {
			m.ShowDetail = false
			return m, nil
		}
		m.Filter.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// updateFilter routes keys to the filter input, refreshing rows as the query changes
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.ApplyFilter):
		m.Filtering = false
		m.Filter.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.Filtering = false
		m.Filter.Blur()
		m.Filter.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	m.refresh()
	return m, cmd
}

// Selected returns the item under the table cursor
func (m Model) Selected() (domain.Item, bool) {
	i := m.Table.Cursor()
	if i < 0 || i >= len(m.Rows) {
		return nil, false
	}
	return m.Rows[i], true
}

// refresh rebuilds the rows from the catalog and the active filters
func (m *Model) refresh() {
	var source []domain.Item
	if q := m.Filter.Value(); q != "" {
		source = m.cat.SearchByTitle(q)
	} else if seq, ok := m.cat.All(); ok {
		for item := range seq {
			source = append(source, item)
		}
	}

	m.Rows = make([]domain.Item, 0, len(source))
	rows := make([]table.Row, 0, len(source))
	for _, item := range source {
		if m.AvailableOnly && !item.Available() {
			continue
		}
		if m.KindFilter != allKinds && item.Kind() != domain.Kinds[m.KindFilter] {
			continue
		}
		m.Rows = append(m.Rows, item)
		rows = append(rows, m.row(item))
	}

	m.Table.SetRows(rows)
	if c := m.Table.Cursor(); c >= len(rows) {
		m.Table.SetCursor(max(len(rows)-1, 0))
	}
	if len(m.Rows) == 0 {
		m.ShowDetail = false
	}
}

func (m Model) row(item domain.Item) table.Row {
	return table.Row{
		item.ID(),
		m.locale.KindName(item.Kind()),
		styles.Truncate(item.Title(), titleWidth),
		styles.Truncate(item.Creator(), creatorWidth),
		strconv.Itoa(item.Year()),
		m.locale.Status(item.Available()),
	}
}

// View implements tea.Model
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderFilterLine(),
		m.Table.View(),
	}
	if m.ShowDetail {
		if item, ok := m.Selected(); ok {
			sections = append(sections, styles.DetailStyle.Render(item.RenderIn(m.locale)))
		}
	}
	sections = append(sections, m.renderStatus(), m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
