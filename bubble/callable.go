package bubble

import (
	"fmt"
	"reflect"

	"github.com/dshills/upcast/msg"
)

// HandlerFunc is the signature of a message handler. It receives the
// payload, the component that most recently spawned or forwarded the
// message, and the message name. The result is only meaningful for query
// messages.
type HandlerFunc func(payload msg.Payload, source Component, name string) any

// HandlerTable maps table keys to handlers. Keys take the form
// "eventPattern" or "eventPattern childName"; see the pattern package
// for the matching and specificity rules.
type HandlerTable map[string]Callable

// Callable is a handler-table value: either a method name resolved on
// the handling ancestor at match time, or a direct function. The zero
// Callable is invalid.
type Callable struct {
	method string
	fn     HandlerFunc
}

// Method references a handler by method name. The method is looked up on
// the matched ancestor when the entry is selected, never earlier, and
// must have one of the signatures
//
//	func(msg.Payload, bubble.Component, string) any
//	func(msg.Payload, bubble.Component, string)
func Method(name string) Callable {
	return Callable{method: name}
}

// Func wraps an inline handler function.
func Func(fn HandlerFunc) Callable {
	return Callable{fn: fn}
}

// resolve binds the callable to the handling ancestor.
func (c Callable) resolve(ancestor Component) (HandlerFunc, error) {
	if c.fn != nil {
		return c.fn, nil
	}
	if c.method == "" {
		return nil, fmt.Errorf("%w: empty handler entry", ErrMissingHandlerMethod)
	}
	m := reflect.ValueOf(ancestor).MethodByName(c.method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s has no method %s",
			ErrMissingHandlerMethod, ancestor.ComponentName(), c.method)
	}
	switch fn := m.Interface().(type) {
	case func(msg.Payload, Component, string) any:
		return fn, nil
	case func(msg.Payload, Component, string):
		return func(p msg.Payload, src Component, name string) any {
			fn(p, src, name)
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s.%s has unsupported signature %T",
			ErrMissingHandlerMethod, ancestor.ComponentName(), c.method, fn)
	}
}
