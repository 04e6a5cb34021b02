package tui

import "github.com/mmcdole/shelf/internal/domain"

// Message types for the browser

// OutcomeMsg carries the result of a borrow or return
type OutcomeMsg struct {
	Outcome domain.Outcome
}
