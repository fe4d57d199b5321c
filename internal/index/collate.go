package index

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator is a total ordering over index names. It returns a
// negative value when a sorts before b, zero when they compare equal,
// and a positive value otherwise.
type Comparator func(a, b string) int

// NewComparator returns a locale-aware, case-insensitive comparator
// for the given language tag.
func NewComparator(tag language.Tag) Comparator {
	c := collate.New(tag, collate.Loose)
	return c.CompareString
}

// DefaultComparator orders names under the root locale. It is the
// comparator used when no collation locale is configured.
func DefaultComparator() Comparator {
	return NewComparator(language.Und)
}
