// Package config loads declarative handler and pass tables from TOML,
// so a component tree's message wiring can live in a file and be hot
// reloaded while the application runs.
//
// # File Shape
//
//	[components.toolbar.on]
//	"clicked save-button" = "OnSaveClicked"   # method name on the component
//
//	[components.toolbar.pass]
//	"clicked" = "save_requested"   # rename
//	"cursor_*" = true              # forward unchanged
//
//	[components.statusbar]
//	pass = ["cursor_*", "mode_changed"]       # list shorthand
//
//	[components.root]
//	pass = true                               # forward everything
//
// Handler entries always name methods; inline functions and Lua chunks
// are wired in code, not files. Pass entries support the bool and list
// shorthands as well as the keyed shape; within the keyed shape, true
// forwards unchanged and a string renames.
package config
