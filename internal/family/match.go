package family

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold returns s in Unicode case-folded form for comparisons.
// A Caser keeps state between calls, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// NameMatches reports whether name contains query, ignoring case.
// An empty query matches everything.
func NameMatches(name, query string) bool {
	return strings.Contains(fold(name), fold(query))
}
