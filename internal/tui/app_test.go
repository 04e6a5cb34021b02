package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/shelf/internal/catalog"
	"github.com/mmcdole/shelf/internal/domain"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New("Campus Library", nil)

	b, err := domain.NewBook("B-001", "Dune", 1965, "Frank Herbert", "9780441013593", 412)
	require.NoError(t, err)
	m, err := domain.NewMagazine("M-001", "National Geographic", 2023, "NatGeo Society", "7", "July")
	require.NoError(t, err)
	d, err := domain.NewDVD("D-001", "Dune Part Two", 2024, "Denis Villeneuve", 166)
	require.NoError(t, err)

	for _, item := range []domain.Item{b, m, d} {
		require.True(t, c.Add(item).OK())
	}
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model and resolves any resulting command once
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if out, ok := cmd().(OutcomeMsg); ok {
		next, _ = m.Update(out)
		m = next.(Model)
	}
	return m
}

func rowIDs(m Model) []string {
	ids := make([]string, len(m.Rows))
	for i, item := range m.Rows {
		ids[i] = item.ID()
	}
	return ids
}

func TestNewModel_ListsCatalog(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	assert.Equal(t, []string{"B-001", "M-001", "D-001"}, rowIDs(m))
	assert.Len(t, m.Table.Rows(), 3)

	item, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "B-001", item.ID())
}

func TestNewModel_EmptyCatalog(t *testing.T) {
	m := NewModel(catalog.New("Empty", nil), domain.LocaleEnglish, nil)

	_, ok := m.Selected()
	assert.False(t, ok)

	_, cmd := m.Update(runes("b"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "No matching items.")
}

func TestBorrowAndReturn(t *testing.T) {
	cat := newTestCatalog(t)
	m := NewModel(cat, domain.LocaleEnglish, nil)

	m = send(t, m, runes("b"))
	assert.Equal(t, "'Dune' borrowed", m.StatusMsg)
	assert.False(t, m.StatusIsErr)
	assert.False(t, m.Rows[0].Available())

	m = send(t, m, runes("b"))
	assert.Equal(t, "'Dune' is currently unavailable", m.StatusMsg)
	assert.True(t, m.StatusIsErr)

	m = send(t, m, runes("r"))
	assert.Equal(t, "'Dune' returned", m.StatusMsg)
	assert.True(t, m.Rows[0].Available())
	assert.Equal(t, 3, cat.Statistics().Available)
}

func TestToggleAvailable(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	m = send(t, m, runes("b"))
	m = send(t, m, runes("a"))
	assert.True(t, m.AvailableOnly)
	assert.Equal(t, []string{"M-001", "D-001"}, rowIDs(m))

	m = send(t, m, runes("a"))
	assert.Equal(t, []string{"B-001", "M-001", "D-001"}, rowIDs(m))
}

func TestCycleKind(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	want := [][]string{
		{"B-001"},
		{"M-001"},
		{"D-001"},
		{"B-001", "M-001", "D-001"},
	}
	for _, ids := range want {
		m = send(t, m, tab)
		assert.Equal(t, ids, rowIDs(m))
	}
	assert.Equal(t, allKinds, m.KindFilter)
}

func TestFilter(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	m = send(t, m, runes("/"))
	require.True(t, m.Filtering)

	for _, r := range "dune" {
		m = send(t, m, runes(string(r)))
	}
	assert.Equal(t, "dune", m.Filter.Value())
	assert.Equal(t, []string{"B-001", "D-001"}, rowIDs(m))

	// q is text while the filter has focus
	m = send(t, m, runes("q"))
	assert.Empty(t, m.Rows)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.Rows, 2)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Filtering)
	assert.Equal(t, "dune", m.Filter.Value())
	assert.Len(t, m.Rows, 2)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.Filter.Value())
	assert.Len(t, m.Rows, 3)
}

func TestFilter_EscapeCancels(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	m = send(t, m, runes("/"))
	m = send(t, m, runes("geo"))
	assert.Len(t, m.Rows, 1)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Filtering)
	assert.Len(t, m.Rows, 3)
}

func TestDetail(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ShowDetail)
	view := m.View()
	assert.Contains(t, view, "Frank Herbert")
	assert.Contains(t, view, "9780441013593")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ShowDetail)
}

func TestDetail_Localized(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleIndonesian, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	assert.Contains(t, view, "Penulis")
	assert.Contains(t, view, "Tersedia")

	m = send(t, m, runes("b"))
	assert.Equal(t, "Dune berhasil dipinjam", m.StatusMsg)
}

func TestView_LocalizedChrome(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleIndonesian, nil)
	m = send(t, m, runes("a"))

	view := m.View()
	assert.Contains(t, view, "Pembuat")
	assert.Contains(t, view, "3 item")
	assert.Contains(t, view, "[semua tipe]")
	assert.Contains(t, view, "[hanya tersedia]")
	assert.NotContains(t, view, "Creator")
	assert.NotContains(t, view, "all types")

	m = send(t, m, runes("/"))
	m = send(t, m, runes("zzz"))
	assert.Contains(t, m.View(), "Tidak ada item yang cocok.")
}

func TestQuit(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindowSize(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 30, m.Height)
	assert.NotEmpty(t, m.View())
}

func TestView_Header(t *testing.T) {
	m := NewModel(newTestCatalog(t), domain.LocaleEnglish, nil)
	m = send(t, m, runes("b"))

	view := m.View()
	assert.Contains(t, view, "Campus Library")
	assert.Contains(t, view, "2 Available")
	assert.Contains(t, view, "1 Borrowed")
	assert.Contains(t, view, "3 total")
}

// Borrow and return run as commands off the event loop, so rendering must not
// race with them. Run with -race.
func TestCommandsConcurrentWithView(t *testing.T) {
	cat := newTestCatalog(t)
	m := NewModel(cat, domain.LocaleEnglish, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ShowDetail)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 200 {
			BorrowCmd(cat, "B-001")()
			ReturnCmd(cat, "B-001")()
		}
	}()

	for range 200 {
		assert.Contains(t, m.View(), "Dune")
		m.refresh()
	}
	wg.Wait()

	item, ok := cat.SearchByID("B-001")
	require.True(t, ok)
	assert.True(t, item.Available())
}
