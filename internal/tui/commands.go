package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/shelf/internal/catalog"
)

// Command factories for catalog mutations

// BorrowCmd borrows the item with id
func BorrowCmd(cat *catalog.Catalog, id string) tea.Cmd {
	return func() tea.Msg {
		return OutcomeMsg{Outcome: cat.Borrow(id)}
	}
}

// ReturnCmd returns the item with id
func ReturnCmd(cat *catalog.Catalog, id string) tea.Cmd {
	return func() tea.Msg {
		return OutcomeMsg{Outcome: cat.Return(id)}
	}
}
