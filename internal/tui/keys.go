package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the browser
type KeyMap struct {
	// Actions
	Borrow          key.Binding
	Return          key.Binding
	ToggleAvailable key.Binding
	CycleKind       key.Binding
	Filter          key.Binding
	Detail          key.Binding
	Escape          key.Binding
	Quit            key.Binding

	// Filter input
	ApplyFilter key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Borrow: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "borrow"),
		),
		Return: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "return"),
		),
		ToggleAvailable: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "available only"),
		),
		CycleKind: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "type"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter title"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ApplyFilter: key.NewBinding(
			key.WithKeys("enter"),
		),
	}
}

// helpBindings lists the bindings shown in the footer, in order
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{k.Borrow, k.Return, k.ToggleAvailable, k.CycleKind, k.Filter, k.Detail, k.Quit}
}
