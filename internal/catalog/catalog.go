package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/shelf/internal/domain"
)

// Catalog owns an ordered collection of items.
// Lookups are linear scans in insertion order; IDs are not deduplicated.
// Every exported method holds mu for its whole duration.
type Catalog struct {
	name   string
	logger *slog.Logger

	mu     sync.Mutex
	items  []domain.Item
	nextID int
}

// New creates an empty catalog.
func New(name string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{name: name, logger: logger, nextID: 1}
}

// Name returns the display name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of items held.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Add appends item. A nil item, typed or not, is rejected through the outcome.
func (c *Catalog) Add(item domain.Item) domain.Outcome {
	if isNil(item) {
		c.logger.Warn("rejected nil item")
		return domain.Outcome{Result: domain.ResultRejected, Reason: "value is not a catalog item"}
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	if item.ID() == formatID(item.Kind(), c.nextID) {
		c.nextID++
	}
	count := len(c.items)
	c.mu.Unlock()

	c.logger.Debug("item added", "id", item.ID(), "kind", item.Kind().Tag(), "count", count)
	return domain.Outcome{Result: domain.ResultAdded, ID: item.ID(), Title: item.Title()}
}

// Borrow lends out the first item with id.
func (c *Catalog) Borrow(id string) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.find(id)
	if !ok {
		return domain.Outcome{Result: domain.ResultNotFound, ID: id}
	}
	out := item.Borrow()
	c.logger.Info("borrow", "id", id, "result", out.Result, "ok", out.OK())
	return out
}

// Return puts the first item with id back on the shelf.
func (c *Catalog) Return(id string) domain.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.find(id)
	if !ok {
		return domain.Outcome{Result: domain.ResultNotFound, ID: id}
	}
	out := item.Return()
	c.logger.Info("return", "id", id)
	return out
}

// Rename retitles the first item with id. A missing item is an outcome;
// an empty title is a ValidationError and leaves the item untouched.
func (c *Catalog) Rename(id, title string) (domain.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.find(id)
	if !ok {
		return domain.Outcome{Result: domain.ResultNotFound, ID: id}, nil
	}
	old := item.Title()
	if err := item.SetTitle(title); err != nil {
		return domain.Outcome{}, err
	}
	c.logger.Info("renamed", "id", id, "from", old, "to", title)
	return domain.Outcome{Result: domain.ResultRenamed, ID: id, Title: title}, nil
}

// isNil reports whether item is nil or a nil pointer of one of the item kinds
func isNil(item domain.Item) bool {
	switch v := item.(type) {
	case nil:
		return true
	case *domain.Book:
		return v == nil
	case *domain.Magazine:
		return v == nil
	case *domain.DVD:
		return v == nil
	default:
		return false
	}
}

// NextID proposes an identifier such as "B-004" from the catalog counter.
// Proposing does not use the number up: the counter moves only when an item
// carrying the proposed ID is added, so an abandoned form leaves no gap.
func (c *Catalog) NextID(kind domain.Kind) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return formatID(kind, c.nextID)
}

func formatID(kind domain.Kind, n int) string {
	return fmt.Sprintf("%s-%03d", idPrefix(kind), n)
}

func idPrefix(kind domain.Kind) string {
	switch kind {
	case domain.KindMagazine:
		return "M"
	case domain.KindDVD:
		return "D"
	default:
		return "B"
	}
}

// find must be called with mu held.
func (c *Catalog) find(id string) (domain.Item, bool) {
	for _, item := range c.items {
		if item.ID() == id {
			return item, true
		}
	}
	return nil, false
}
