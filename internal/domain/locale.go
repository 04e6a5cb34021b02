package domain

import (
	"fmt"
	"strings"
)

// Locale holds the user-facing labels for item summaries and outcomes
type Locale struct {
	Code            string
	Labels          map[FieldKey]string
	KindNames       map[Kind]string
	StatusAvailable string
	StatusBorrowed  string
	MinutesSuffix   string
	Messages        map[Result]string // format with one %s: title, ID or reason

	// Browser chrome
	CreatorLabel  string
	TotalFormat   string // one %d: item count
	AllKinds      string
	AvailableOnly string
	NoMatches     string
}

// LocaleEnglish is the default locale
var LocaleEnglish = Locale{
	Code: "en",
	Labels: map[FieldKey]string{
		FieldID:        "ID",
		FieldKind:      "Type",
		FieldTitle:     "Title",
		FieldAuthor:    "Author",
		FieldISBN:      "ISBN",
		FieldPublisher: "Publisher",
		FieldIssue:     "Issue",
		FieldMonth:     "Month",
		FieldDirector:  "Director",
		FieldDuration:  "Duration",
		FieldYear:      "Year",
		FieldPages:     "Pages",
		FieldStatus:    "Status",
	},
	KindNames: map[Kind]string{
		KindBook:     "Book",
		KindMagazine: "Magazine",
		KindDVD:      "DVD",
	},
	StatusAvailable: "Available",
	StatusBorrowed:  "Borrowed",
	MinutesSuffix:   "min",
	Messages: map[Result]string{
		ResultAdded:       "Item '%s' added to the catalog",
		ResultRejected:    "Item rejected: %s",
		ResultBorrowed:    "'%s' borrowed",
		ResultUnavailable: "'%s' is currently unavailable",
		ResultReturned:    "'%s' returned",
		ResultNotFound:    "No item with ID '%s'",
		ResultRenamed:     "Title changed to '%s'",
	},
	CreatorLabel:  "Creator",
	TotalFormat:   "%d total",
	AllKinds:      "all types",
	AvailableOnly: "available only",
	NoMatches:     "No matching items.",
}

// LocaleIndonesian carries the labels of the campus library this tool started at
var LocaleIndonesian = Locale{
	Code: "id",
	Labels: map[FieldKey]string{
		FieldID:        "ID",
		FieldKind:      "Tipe",
		FieldTitle:     "Judul",
		FieldAuthor:    "Penulis",
		FieldISBN:      "ISBN",
		FieldPublisher: "Penerbit",
		FieldIssue:     "Edisi",
		FieldMonth:     "Bulan",
		FieldDirector:  "Sutradara",
		FieldDuration:  "Durasi",
		FieldYear:      "Tahun",
		FieldPages:     "Halaman",
		FieldStatus:    "Status",
	},
	KindNames: map[Kind]string{
		KindBook:     "Buku",
		KindMagazine: "Majalah",
		KindDVD:      "DVD",
	},
	StatusAvailable: "Tersedia",
	StatusBorrowed:  "Dipinjam",
	MinutesSuffix:   "menit",
	Messages: map[Result]string{
		ResultAdded:       "Item '%s' berhasil ditambahkan ke perpustakaan",
		ResultRejected:    "Item ditolak: %s",
		ResultBorrowed:    "%s berhasil dipinjam",
		ResultUnavailable: "%s sedang tidak tersedia",
		ResultReturned:    "%s berhasil dikembalikan",
		ResultNotFound:    "Tidak ditemukan item dengan ID '%s'",
		ResultRenamed:     "Judul diubah menjadi '%s'",
	},
	CreatorLabel:  "Pembuat",
	TotalFormat:   "%d item",
	AllKinds:      "semua tipe",
	AvailableOnly: "hanya tersedia",
	NoMatches:     "Tidak ada item yang cocok.",
}

// LookupLocale returns the built-in locale for code, falling back to English
func LookupLocale(code string) Locale {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case LocaleIndonesian.Code:
		return LocaleIndonesian
	default:
		return LocaleEnglish
	}
}

// Label returns the field label
func (l Locale) Label(key FieldKey) string {
	return l.Labels[key]
}

// KindName returns the display name of k
func (l Locale) KindName(k Kind) string {
	if name, ok := l.KindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Status returns the availability label
func (l Locale) Status(available bool) string {
	if available {
		return l.StatusAvailable
	}
	return l.StatusBorrowed
}

// Value translates the locale-neutral values carried by Fields
func (l Locale) Value(f Field) string {
	switch f.Key {
	case FieldKind:
		if k, err := ParseKind(f.Value); err == nil {
			return l.KindName(k)
		}
	case FieldStatus:
		return l.Status(f.Value == statusAvailable)
	case FieldDuration:
		return f.Value + " " + l.MinutesSuffix
	}
	return f.Value
}

// Render formats an item as one "Label: value" line per field
func (l Locale) Render(item Item) string {
	fields := item.Fields()

	width := 0
	for _, f := range fields {
		if n := len(l.Label(f.Key)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s : %s", width, l.Label(f.Key), l.Value(f))
	}
	return b.String()
}

// Message formats an outcome
func (l Locale) Message(o Outcome) string {
	format, ok := l.Messages[o.Result]
	if !ok {
		return ""
	}
	switch o.Result {
	case ResultNotFound:
		return fmt.Sprintf(format, o.ID)
	case ResultRejected:
		return fmt.Sprintf(format, o.Reason)
	default:
		return fmt.Sprintf(format, o.Title)
	}
}
