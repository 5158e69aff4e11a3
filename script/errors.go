package script

import "errors"

// Sentinel errors for the scripting engine.
var (
	// ErrEngineClosed is returned when a closed engine is used.
	ErrEngineClosed = errors.New("script engine is closed")

	// ErrNotAFunction is returned when a chunk does not evaluate to a
	// Lua function.
	ErrNotAFunction = errors.New("chunk did not return a function")
)
