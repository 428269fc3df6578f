package models

// Search intent classes assignable to a PageSeed.
const (
	IntentInformational = "informational"
	IntentCommercial    = "commercial"
	IntentTransactional = "transactional"
)

// ValidIntent reports whether s is one of the three allowed intent values.
func ValidIntent(s string) bool {
	switch s {
	case IntentInformational, IntentCommercial, IntentTransactional:
		return true
	}
	return false
}

// PageSeed is the atomic catalog entry: everything a page shows is derived
// from these five fields. Seeds are loaded once at process start and never
// mutated.
type PageSeed struct {
	Family  PageFamily `json:"family"`
	Slug    string     `json:"slug"`
	Entity  string     `json:"entity"`
	Keyword string     `json:"keyword"`
	Intent  string     `json:"intent"`
}

// DerivedPage is the computed result of running the content deriver over a
// PageSeed. It is never stored; the same seed always derives the same page.
type DerivedPage struct {
	Seed        PageSeed
	Path        string
	Title       string
	Description string
	H1          string

	// Supplementary copy picked deterministically from fixed option lists.
	Cadence       string
	Owner         string
	DataSource    string
	SuccessMetric string
	Pitfall       string
}
