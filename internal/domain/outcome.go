package domain

// Result classifies a business outcome. None of these are errors; callers
// branch on them the same way they branch on a lookup's ok flag.
type Result int

const (
	ResultAdded Result = iota
	ResultRejected
	ResultBorrowed
	ResultUnavailable
	ResultReturned
	ResultNotFound
	ResultRenamed
)

// String returns a short identifier for logs
func (r Result) String() string {
	switch r {
	case ResultAdded:
		return "added"
	case ResultRejected:
		return "rejected"
	case ResultBorrowed:
		return "borrowed"
	case ResultUnavailable:
		return "unavailable"
	case ResultReturned:
		return "returned"
	case ResultNotFound:
		return "not_found"
	case ResultRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Outcome is the value returned by add, borrow and return operations
type Outcome struct {
	Result Result
	ID     string
	Title  string
	Reason string // set for ResultRejected
}

// OK reports whether the operation changed the catalog as requested
func (o Outcome) OK() bool {
	switch o.Result {
	case ResultAdded, ResultBorrowed, ResultReturned, ResultRenamed:
		return true
	default:
		return false
	}
}

// Message returns the outcome in English
func (o Outcome) Message() string {
	return LocaleEnglish.Message(o)
}

// Stats is a point-in-time snapshot of catalog counts
type Stats struct {
	Total     int
	Available int
	Borrowed  int
	Books     int
	Magazines int
	DVDs      int
}

// CountOf returns the per-kind count for k
func (s Stats) CountOf(k Kind) int {
	switch k {
	case KindBook:
		return s.Books
	case KindMagazine:
		return s.Magazines
	case KindDVD:
		return s.DVDs
	default:
		return 0
	}
}
