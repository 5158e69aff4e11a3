package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/upcast/msg"
)

// Wildcard matches zero or more identifier characters within a pattern.
const Wildcard = '*'

// ErrMalformedKey is returned when a table key is not of the form
// "pattern" or "pattern childName".
var ErrMalformedKey = errors.New("malformed table key")

// Key is a parsed table key: a message-name pattern plus an optional
// child-name qualifier.
type Key struct {
	// Event is the message-name pattern, possibly containing wildcards.
	Event string

	// Child is the child-name qualifier, empty when unqualified.
	Child string
}

// ParseKey splits a raw table key into its pattern and qualifier parts.
func ParseKey(raw string) (Key, error) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		return Key{Event: fields[0]}, nil
	case 2:
		return Key{Event: fields[0], Child: fields[1]}, nil
	default:
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}
}

// Qualified reports whether the key carries a child-name qualifier.
func (k Key) Qualified() bool {
	return k.Child != ""
}

// Literals returns the number of non-wildcard characters in the event
// pattern, the secondary specificity measure.
func (k Key) Literals() int {
	n := 0
	for _, r := range k.Event {
		if r != Wildcard {
			n++
		}
	}
	return n
}

// outranks reports whether k is more specific than other. Child-qualified
// keys outrank unqualified ones; within a tier, more literals wins.
func (k Key) outranks(other Key) bool {
	if k.Qualified() != other.Qualified() {
		return k.Qualified()
	}
	return k.Literals() > other.Literals()
}

// Match reports whether pat matches name in full. Each wildcard consumes
// zero or more identifier characters; all other characters must match
// exactly.
func Match(pat, name string) bool {
	return matchRunes([]rune(pat), []rune(name))
}

func matchRunes(pat, name []rune) bool {
	if len(pat) == 0 {
		return len(name) == 0
	}
	if pat[0] == Wildcard {
		// Zero characters consumed.
		if matchRunes(pat[1:], name) {
			return true
		}
		// Consume one identifier character and retry.
		return len(name) > 0 && msg.IsIdentRune(name[0]) && matchRunes(pat, name[1:])
	}
	if len(name) == 0 || name[0] != pat[0] {
		return false
	}
	return matchRunes(pat[1:], name[1:])
}
