package search

import (
	"iter"
	"log/slog"
	"slices"
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/shelf/internal/domain"
)

// Source is the read side of the catalog that search runs over
type Source interface {
	All() (iter.Seq[domain.Item], bool)
}

// Suggestion is a fuzzy title match with highlight positions
type Suggestion struct {
	Item           domain.Item
	MatchedIndexes []int // Byte offsets into Title that matched
	Title          string
	Score          int // Higher is better
}

// titleIndex implements sahilm/fuzzy.Source over the titles as displayed.
// fuzzy folds case itself, so offsets stay valid for the original text.
type titleIndex struct {
	items  []domain.Item
	titles []string
}

func newTitleIndex(items []domain.Item) *titleIndex {
	idx := &titleIndex{items: items, titles: make([]string, len(items))}
	for i, item := range items {
		idx.titles[i] = item.Title()
	}
	return idx
}

// String returns the title at index i (implements fuzzy.Source)
func (idx *titleIndex) String(i int) string { return idx.titles[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *titleIndex) Len() int { return len(idx.items) }

// Service runs approximate searches that the catalog's exact scans do not cover
type Service struct {
	src    Source
	logger *slog.Logger
}

// NewService creates a new search service
func NewService(src Source, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{src: src, logger: logger}
}

// Suggest returns up to limit items whose titles fuzzily match query, best first.
// Used for "did you mean" hints after a substring search finds nothing.
func (s *Service) Suggest(query string, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	items := s.items()
	if len(items) == 0 {
		return nil
	}

	matches := fuzzy.FindFrom(query, newTitleIndex(items))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]Suggestion, len(matches))
	for i, m := range matches {
		results[i] = Suggestion{
			Item:           items[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Title:          m.Str,
			Score:          m.Score,
		}
	}

	s.logger.Debug("title suggestions", "query", query, "count", len(results))
	return results
}

// ByCreator returns items whose author, publisher or director matches query,
// ignoring case and diacritics, closest match first. Items at equal distance
// keep catalog order.
func (s *Service) ByCreator(query string) []domain.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	items := s.items()
	creators := make([]string, len(items))
	for i, item := range items {
		creators[i] = item.Creator()
	}

	ranks := lfuzzy.RankFindNormalizedFold(query, creators)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	results := make([]domain.Item, len(ranks))
	for i, r := range ranks {
		results[i] = items[r.OriginalIndex]
	}

	s.logger.Debug("creator search", "query", query, "count", len(results))
	return results
}

func (s *Service) items() []domain.Item {
	seq, ok := s.src.All()
	if !ok {
		return nil
	}
	return slices.Collect(seq)
}
