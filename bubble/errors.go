package bubble

import "errors"

// Sentinel errors for the bubbling engine.
var (
	// ErrInvalidMessage is returned when Spawn is called without a
	// resolvable message name or source component.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrMissingHandlerMethod is returned when a handler entry names a
	// method that does not exist, or has the wrong signature, on the
	// matched ancestor.
	ErrMissingHandlerMethod = errors.New("handler method not found")

	// ErrInvalidPassSpec is returned when a component's pass spec is not
	// one of the recognized shapes.
	ErrInvalidPassSpec = errors.New("invalid pass spec")

	// ErrUnhandledQuery is returned when a query message reaches the top
	// of the ancestor chain without any ancestor handling it.
	ErrUnhandledQuery = errors.New("unhandled query message")

	// ErrUnknownChild is returned by child resolvers asked for a name
	// they do not recognize.
	ErrUnknownChild = errors.New("unknown child name")
)

// BubbleError wraps an error raised during a bubble with the message name
// and the component at the failing hop.
type BubbleError struct {
	// Message is the message name at the time of the failure.
	Message string

	// Component is the name of the component at the failing hop, empty
	// when the failure precedes the walk.
	Component string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *BubbleError) Error() string {
	s := "bubble error"
	if e.Message != "" {
		s += " for message " + e.Message
	}
	if e.Component != "" {
		s += " at component " + e.Component
	}
	return s + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *BubbleError) Unwrap() error {
	return e.Err
}
