// Package pattern implements table-key matching for the bubbling engine.
//
// A table key pairs a message-name pattern with an optional child-name
// qualifier, separated by a space:
//
//	"file_saved"           - exact name, any source
//	"cursor_*"             - wildcard, any source
//	"selected childA"      - exact name, only when spawned by child "childA"
//
// The wildcard '*' matches zero or more identifier characters (letters,
// digits, underscore) and may appear several times in a pattern. Patterns
// are anchored: they must cover the whole message name.
//
// # Specificity
//
// When several keys match, exactly one entry is selected:
//
//  1. Keys with a child qualifier outrank keys without one.
//  2. Within a tier, the pattern with more non-wildcard characters wins.
//  3. Remaining ties are unspecified; table authors must avoid them.
package pattern
