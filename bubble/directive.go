package bubble

import (
	"fmt"

	"github.com/dshills/upcast/msg"
	"github.com/dshills/upcast/pattern"
)

// PassTable is the keyed pass-spec shape: table keys (same form as
// handler-table keys) mapped to directives governing how an unhandled
// ordinary message continues upward.
type PassTable map[string]Directive

// Directive controls the continuation of an ordinary message at one
// ancestor. The concrete directives are Forward, Rename, and Transform.
type Directive interface {
	directive()
}

type forward struct{}

func (forward) directive() {}

// Forward continues the message unchanged; only the envelope source is
// updated to the forwarding ancestor.
var Forward Directive = forward{}

// Rename continues the message under a new name. The payload is not
// touched, and a query classification made at spawn time is not revised.
type Rename string

func (Rename) directive() {}

// Next is the outgoing envelope stub handed to a Transform. Its payload
// starts empty and its name starts as the current message name; whatever
// the transform leaves in the stub becomes the forwarded envelope.
type Next struct {
	Name    string
	Payload msg.Payload
}

// Transform continues the message with a computed name and payload.
type Transform func(next *Next, old msg.Payload)

func (Transform) directive() {}

// resolvePassSpec normalizes a component's pass spec to a PassTable
// equivalent and selects the directive for the given message, if any.
// A nil spec yields no directive. Shapes:
//
//	bool      - true forwards everything unchanged, false forwards nothing
//	[]string  - name patterns forwarded unchanged
//	PassTable - keyed directives, selected by specificity
//	func() any - re-resolved, then treated as one of the above
func resolvePassSpec(spec any, name string, childMatch pattern.ChildMatchFunc) (Directive, bool, error) {
	if fn, ok := spec.(func() any); ok {
		if fn == nil {
			return nil, false, nil
		}
		spec = fn()
	}
	switch v := spec.(type) {
	case nil:
		return nil, false, nil
	case bool:
		if v {
			return Forward, true, nil
		}
		return nil, false, nil
	case []string:
		for _, pat := range v {
			if pattern.Match(pat, name) {
				return Forward, true, nil
			}
		}
		return nil, false, nil
	case PassTable:
		_, dir, ok, err := pattern.Best(v, name, childMatch)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		if dir == nil {
			return nil, false, fmt.Errorf("%w: nil directive", ErrInvalidPassSpec)
		}
		return dir, true, nil
	default:
		return nil, false, fmt.Errorf("%w: unsupported shape %T", ErrInvalidPassSpec, spec)
	}
}
