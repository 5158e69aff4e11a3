// Package msg provides the message primitives shared by the bubbling
// engine: message-name classification and the payload type with its
// path-based access helpers.
//
// # Message Names
//
// Message names are identifiers (letters, digits, underscore). A trailing
// '!' marks a query message, one that bubbles until an ancestor returns a
// value:
//
//	"file_saved"    - ordinary message, fire and forget
//	"cursor_moved"  - ordinary message
//	"give_info!"    - query message, expects an answer
//
// # Payloads
//
// A Payload is an open map carried with each message. The engine never
// inspects payload contents; the helpers here exist for handlers and
// transforms that want structured access:
//
//	v, ok := msg.Get(p, "cursor.line")
//	p, err := msg.Set(p, "cursor.line", 42)
package msg
