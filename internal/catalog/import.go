package catalog

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mmcdole/shelf/internal/domain"
)

// Record field sets accepted by Import, one per kind.
type (
	bookRecord struct {
		ID     string `mapstructure:"id"`
		Title  string `mapstructure:"title"`
		Year   int    `mapstructure:"year"`
		Author string `mapstructure:"author"`
		ISBN   string `mapstructure:"isbn"`
		Pages  int    `mapstructure:"pages"`
	}

	magazineRecord struct {
		ID        string `mapstructure:"id"`
		Title     string `mapstructure:"title"`
		Year      int    `mapstructure:"year"`
		Publisher string `mapstructure:"publisher"`
		Issue     string `mapstructure:"issue"`
		Month     string `mapstructure:"month"`
	}

	dvdRecord struct {
		ID       string `mapstructure:"id"`
		Title    string `mapstructure:"title"`
		Year     int    `mapstructure:"year"`
		Director string `mapstructure:"director"`
		Minutes  int    `mapstructure:"minutes"`
	}
)

// Import adds loosely typed records, such as the seed list from the config
// file. Each record needs a "kind" tag of book, magazine or dvd. Records
// that cannot be built are reported as rejected outcomes and skipped; the
// rest go through Add. One outcome is returned per record, in order.
func (c *Catalog) Import(records []map[string]any) []domain.Outcome {
	outcomes := make([]domain.Outcome, 0, len(records))
	for i, rec := range records {
		item, err := decodeItem(rec)
		if err != nil {
			c.logger.Warn("import record rejected", "index", i, "error", err)
			outcomes = append(outcomes, domain.Outcome{
				Result: domain.ResultRejected,
				ID:     recordID(rec),
				Reason: fmt.Sprintf("record %d: %v", i+1, err),
			})
			continue
		}
		outcomes = append(outcomes, c.Add(item))
	}
	return outcomes
}

func decodeItem(rec map[string]any) (domain.Item, error) {
	tag, _ := rec["kind"].(string)
	kind, err := domain.ParseKind(tag)
	if err != nil {
		return nil, err
	}

	switch kind {
	case domain.KindBook:
		var r bookRecord
		if err := decode(rec, &r); err != nil {
			return nil, err
		}
		return domain.NewBook(r.ID, r.Title, r.Year, r.Author, r.ISBN, r.Pages)
	case domain.KindMagazine:
		var r magazineRecord
		if err := decode(rec, &r); err != nil {
			return nil, err
		}
		return domain.NewMagazine(r.ID, r.Title, r.Year, r.Publisher, r.Issue, r.Month)
	default:
		var r dvdRecord
		if err := decode(rec, &r); err != nil {
			return nil, err
		}
		return domain.NewDVD(r.ID, r.Title, r.Year, r.Director, r.Minutes)
	}
}

func decode(rec map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(rec); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}

func recordID(rec map[string]any) string {
	if id, ok := rec["id"]; ok && id != nil {
		return fmt.Sprint(id)
	}
	return ""
}
