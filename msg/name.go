package msg

import (
	"strings"
	"unicode"
)

// QueryMarker is the trailing character that marks a message name as a
// query. Queries bubble unconditionally until an ancestor handles them
// and their handler's result is returned to the spawner.
const QueryMarker = "!"

// IsQuery reports whether name carries the query marker.
func IsQuery(name string) bool {
	return strings.HasSuffix(name, QueryMarker)
}

// Base returns name without the query marker, if present.
func Base(name string) string {
	return strings.TrimSuffix(name, QueryMarker)
}

// IsIdentRune reports whether r is a message identifier character:
// a letter, digit, or underscore.
func IsIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// ValidName reports whether name is a well-formed message name: one or
// more identifier characters, optionally followed by the query marker.
func ValidName(name string) bool {
	base := Base(name)
	if base == "" {
		return false
	}
	for _, r := range base {
		if !IsIdentRune(r) {
			return false
		}
	}
	return true
}
