package catalog

import (
	"iter"
	"slices"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
)

// All returns every item in insertion order. The bool is false when the
// catalog is empty. The sequence iterates a snapshot taken at call time and
// can be ranged over more than once.
func (c *Catalog) All() (iter.Seq[domain.Item], bool) {
	items := c.snapshot()
	return slices.Values(items), len(items) > 0
}

// Available returns the items currently on the shelf. The bool is false
// when none are available.
func (c *Catalog) Available() (iter.Seq[domain.Item], bool) {
	items := c.filter(domain.Item.Available)
	return slices.Values(items), len(items) > 0
}

// OfKind returns the items of one kind in insertion order.
func (c *Catalog) OfKind(kind domain.Kind) iter.Seq[domain.Item] {
	return slices.Values(c.filter(func(item domain.Item) bool {
		return item.Kind() == kind
	}))
}

// SearchByTitle returns items whose title contains query, ignoring case.
// An empty result means nothing matched.
func (c *Catalog) SearchByTitle(query string) []domain.Item {
	needle := strings.ToLower(query)
	return c.filter(func(item domain.Item) bool {
		return strings.Contains(strings.ToLower(item.Title()), needle)
	})
}

// SearchByID returns the first item whose ID equals id exactly.
func (c *Catalog) SearchByID(id string) (domain.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(id)
}

// Statistics counts items by availability and kind.
func (c *Catalog) Statistics() domain.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s domain.Stats
	for _, item := range c.items {
		s.Total++
		if item.Available() {
			s.Available++
		}
		switch item.Kind() {
		case domain.KindBook:
			s.Books++
		case domain.KindMagazine:
			s.Magazines++
		case domain.KindDVD:
			s.DVDs++
		}
	}
	s.Borrowed = s.Total - s.Available
	return s
}

func (c *Catalog) snapshot() []domain.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Catalog) filter(keep func(domain.Item) bool) []domain.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []domain.Item
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
