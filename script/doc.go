// Package script lets handler tables and pass transforms be written in
// Lua instead of Go, for trees whose behavior is assembled at runtime
// (configuration-driven UIs, user scripting).
//
// A chunk must evaluate to a function:
//
//	h, err := eng.Handler(`return function(payload, source, name)
//	    return "saw " .. name .. " from " .. source
//	end`)
//
//	tr, err := eng.Transform(`return function(old)
//	    return { name = "status_update", payload = { text = old.text } }
//	end`)
//
// The Lua state is sandboxed the same way plugin code usually is: only
// the base, table, string, and math libraries are open, and the chunk
// loaders (dofile, loadfile, load, loadstring) are removed.
//
// An Engine is not safe for concurrent use. It is intended to live on
// the same goroutine as the bubble controller invoking its functions;
// nested spawns from inside a Lua handler are fine because calls are
// plain synchronous function calls.
package script
