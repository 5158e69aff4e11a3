// Command upcast-demo shows message bubbling over a small tcell widget
// tree: an editor leaf spawns messages, a toolbar renames and transforms
// them mid-bubble, and the app shell at the root consumes them.
//
// Usage:
//
//	upcast-demo [-config messages.toml] [-dump]
//
// With -config, pass tables are loaded from the file and hot reloaded on
// change. With -dump, the component tree is printed to stderr on exit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/upcast/bubble"
	"github.com/dshills/upcast/config"
	"github.com/dshills/upcast/script"
	"github.com/dshills/upcast/tree"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML file with pass-table overrides, hot reloaded")
	dump := flag.Bool("dump", false, "print the component tree on exit")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// The status transform runs in Lua, mostly to prove that it can.
	eng := script.NewEngine()
	defer eng.Close()
	transform, err := eng.Transform(`return function(old)
		return { name = "status_update", payload = { text = "cursor at line " .. old.line } }
	end`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: compiling transform: %v\n", err)
		return 1
	}

	ctl := bubble.New()

	app := newAppShell(screen)
	bar := newToolbar(screen, transform)
	ed := newEditor(screen, ctl)
	bar.x, bar.y = 0, 0
	ed.x, ed.y = 2, 2

	// app ── toolbar ── (structural wrapper) ── editor
	root := mountAll(app, bar, ed)

	bar.RegisterChild("editor", ed)

	if *configPath != "" {
		components := map[string]config.Configurable{
			"app":     app.Base,
			"toolbar": bar.Base,
			"editor":  ed.Base,
		}
		f, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
			return 1
		}
		if err := f.Apply(components); err != nil {
			fmt.Fprintf(os.Stderr, "Error: applying config: %v\n", err)
			return 1
		}
		w, err := config.Watch(*configPath, func(f *config.File, err error) {
			if err != nil {
				return
			}
			// Reload races against the next spawn are acceptable in a
			// demo; tables swap between bubbles, not during one.
			_ = f.Apply(components)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching config: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	loop(screen, app, bar, ed)

	if *dump {
		fmt.Fprintln(os.Stderr, tree.Draw(root))
	}
	return 0
}

// mountAll builds the retained tree the default parent policy walks. The
// wrapper node between toolbar and editor has no component attached and
// is skipped during resolution.
func mountAll(app *appShell, bar *toolbar, ed *editor) *tree.Node {
	root := tree.NewNode("app")
	root.Attach(app)
	app.SetAnchor(root)

	barNode := tree.NewNode("toolbar")
	barNode.Attach(bar)
	bar.SetAnchor(barNode)
	root.AppendChild(barNode)

	wrapper := tree.NewNode("wrapper")
	barNode.AppendChild(wrapper)

	edNode := tree.NewNode("editor")
	edNode.Attach(ed)
	ed.SetAnchor(edNode)
	wrapper.AppendChild(edNode)

	return root
}

func loop(screen tcell.Screen, app *appShell, bar *toolbar, ed *editor) {
	for {
		screen.Clear()
		app.Render()
		bar.Render()
		ed.Render()
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			switch ev.Rune() {
			case 'q':
				return
			case 's':
				ed.save()
			case 'c':
				ed.moveCursor()
			case 't':
				ed.queryTheme()
			}
		}
	}
}
