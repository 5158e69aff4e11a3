package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/upcast/bubble"
	"github.com/dshills/upcast/msg"
)

// Engine hosts a sandboxed Lua state and compiles chunks into handler
// and transform functions for the bubble controller.
type Engine struct {
	L      *lua.LState
	log    bubble.Logger
	closed bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used to report Lua runtime errors raised
// from inside compiled handlers and transforms.
func WithLogger(l bubble.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates a sandboxed Lua engine. Only the base, table,
// string, and math libraries are opened, and the chunk loaders are
// removed.
func NewEngine(opts ...EngineOption) *Engine {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug, and package are never opened; the loaders below
	// could still pull code in from outside the chunk, so they go too.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Engine{L: L, log: bubble.NewSlogLogger(nil)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the Lua state. Compiled handlers and transforms must
// not be invoked after Close.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// compile evaluates a chunk and returns the function it produced.
func (e *Engine) compile(code string) (*lua.LFunction, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}
	if err := e.L.DoString(code); err != nil {
		return nil, fmt.Errorf("compiling chunk: %w", err)
	}
	v := e.L.Get(-1)
	e.L.Pop(1)
	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotAFunction, v.Type())
	}
	return fn, nil
}

// call invokes a compiled function with one result.
func (e *Engine) call(fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	if e.closed {
		return lua.LNil, ErrEngineClosed
	}
	e.L.Push(fn)
	for _, a := range args {
		e.L.Push(a)
	}
	if err := e.L.PCall(len(args), 1, nil); err != nil {
		return lua.LNil, err
	}
	ret := e.L.Get(-1)
	e.L.Pop(1)
	return ret, nil
}

// Handler compiles a chunk evaluating to
//
//	function(payload, source, name) ... end
//
// into a handler function. The Lua function receives the payload as a
// table and the source as the component's name; its return value becomes
// the handler result. Lua runtime errors are logged and yield a nil
// result rather than aborting the bubble.
func (e *Engine) Handler(code string) (bubble.HandlerFunc, error) {
	fn, err := e.compile(code)
	if err != nil {
		return nil, err
	}
	return func(p msg.Payload, src bubble.Component, name string) any {
		ret, err := e.call(fn, e.toLua(p), lua.LString(src.ComponentName()), lua.LString(name))
		if err != nil {
			e.log.Error("lua handler failed", "name", name, "error", err)
			return nil
		}
		return e.toGo(ret)
	}, nil
}

// Transform compiles a chunk evaluating to
//
//	function(old) return { name = ..., payload = { ... } } end
//
// into a pass transform. The returned table's "name" field renames the
// forwarded message (omit it to keep the name) and its "payload" table
// becomes the forwarded payload (omitted, the payload stays empty). Lua
// runtime errors are logged and leave the stub unmodified.
func (e *Engine) Transform(code string) (bubble.Transform, error) {
	fn, err := e.compile(code)
	if err != nil {
		return nil, err
	}
	return func(next *bubble.Next, old msg.Payload) {
		ret, err := e.call(fn, e.toLua(old))
		if err != nil {
			e.log.Error("lua transform failed", "name", next.Name, "error", err)
			return
		}
		t, ok := ret.(*lua.LTable)
		if !ok {
			return
		}
		if name, ok := t.RawGetString("name").(lua.LString); ok {
			next.Name = string(name)
		}
		if payload := t.RawGetString("payload"); payload != lua.LNil {
			next.Payload = e.toGoPayload(payload)
		}
	}, nil
}
