package domain

// Item is the polymorphic interface for everything the catalog holds.
// Shared state and borrow/return rules come from the embedded record; only
// the kind-specific fields differ. Book, Magazine and DVD are the only
// implementations.
type Item interface {
	// ID returns the caller-supplied identifier (not guaranteed unique)
	ID() string

	// Title returns the display title
	Title() string

	// SetTitle renames the item, rejecting an empty title with a ValidationError
	SetTitle(title string) error

	// Year returns the publication or release year
	Year() int

	// Available reports whether the item is on the shelf
	Available() bool

	// Kind returns the item type
	Kind() Kind

	// Creator returns the author, publisher or director
	Creator() string

	// Fields returns the display fields in render order
	Fields() []Field

	// Render returns a multi-line English summary
	Render() string

	// RenderIn returns the summary with labels from loc
	RenderIn(loc Locale) string

	// Borrow lends the item out if it is available
	Borrow() Outcome

	// Return puts the item back on the shelf
	Return() Outcome

	sealed()
}

// FieldKey identifies a display field independent of locale
type FieldKey int

const (
	FieldID FieldKey = iota
	FieldKind
	FieldTitle
	FieldAuthor
	FieldISBN
	FieldPublisher
	FieldIssue
	FieldMonth
	FieldDirector
	FieldDuration
	FieldYear
	FieldPages
	FieldStatus
)

// Field is one labelled line of an item summary
type Field struct {
	Key   FieldKey
	Value string
}

// Compile-time interface checks
var (
	_ Item = (*Book)(nil)
	_ Item = (*Magazine)(nil)
	_ Item = (*DVD)(nil)
)
