// Package bubble implements tree-scoped message bubbling for component
// hierarchies.
//
// A component spawns a named message; the controller walks upward through
// the component's ancestor chain, offering each ancestor a chance to
// handle the message, transform it, or let it continue. Messages are
// strictly scoped to the ancestor chain of the spawning component; there
// is no broadcast and no global channel.
//
// # Architecture
//
//	            spawn(name, payload)
//	                    │
//	                    ▼
//	┌──────────────────────────────────────────┐
//	│            Bubble Controller              │
//	│  - envelope construction                  │
//	│  - ancestor walk (parent resolution)      │
//	│  - handler dispatch                       │
//	│  - pass-directive application             │
//	└──────────────────────────────────────────┘
//	          │                      │
//	          ▼                      ▼
//	┌─────────────────┐    ┌─────────────────┐
//	│ pattern.Best    │    │ tree ancestry    │
//	│ key selection   │    │ (default parent  │
//	│ by specificity  │    │  policy)         │
//	└─────────────────┘    └─────────────────┘
//
// # Message Kinds
//
// Ordinary messages are fire-and-forget. At each ancestor the handler
// table may handle them; independently, the ancestor's pass spec decides
// whether they continue upward, and in what shape. Without a matching
// pass entry the message stops after that ancestor.
//
// Query messages (name ending in '!') request an answer. They bubble
// unconditionally, and the first ancestor whose handler table matches
// answers: its handler's result is returned to the spawner and the walk
// stops, even when that result is nil. A query that exhausts the chain
// unanswered is an error.
//
// # Re-entrancy
//
// Spawn is synchronous and single-threaded. A handler may itself spawn;
// the nested bubble runs to completion before the outer loop resumes.
// Each call owns its own envelope and loop state, so nested bubbles
// cannot interfere with one another as long as handler and pass tables
// stay stable for the duration of a bubble matching against them.
//
// # Basic Usage
//
//	ctl := bubble.New()
//
//	parent := newWidget("parent")
//	parent.SetHandlers(bubble.HandlerTable{
//	    "file_saved": bubble.Func(func(p msg.Payload, src bubble.Component, name string) any {
//	        // react to the save
//	        return nil
//	    }),
//	})
//
//	child := newWidget("child")
//	// ... anchor both widgets in a tree ...
//
//	_, err := ctl.Spawn(child, "file_saved", msg.Payload{"path": "main.go"})
package bubble
