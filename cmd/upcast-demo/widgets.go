package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/upcast/bubble"
	"github.com/dshills/upcast/msg"
)

// widget is the shared base for the demo components: a bubble.Base plus
// a screen region to render into.
type widget struct {
	*bubble.Base
	screen tcell.Screen
	x, y   int
}

func (w *widget) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		w.screen.SetContent(x+i, y, r, nil, style)
	}
}

// appShell is the tree root. It counts save requests, shows the status
// line, and answers theme queries.
type appShell struct {
	widget
	saves  int
	status string
}

func newAppShell(screen tcell.Screen) *appShell {
	a := &appShell{widget: widget{Base: bubble.NewBase("app"), screen: screen}}
	a.SetHandlers(bubble.HandlerTable{
		"save_requested": bubble.Method("OnSaveRequested"),
		"status_update":  bubble.Method("OnStatusUpdate"),
		"theme!":         bubble.Method("OnThemeQuery"),
	})
	return a
}

// OnSaveRequested handles renamed key presses arriving from the toolbar.
func (a *appShell) OnSaveRequested(p msg.Payload, src bubble.Component, name string) any {
	a.saves++
	a.status = fmt.Sprintf("saved (%d total), requested via %s", a.saves, src.ComponentName())
	return nil
}

// OnStatusUpdate handles transformed cursor traffic.
func (a *appShell) OnStatusUpdate(p msg.Payload, src bubble.Component, name string) any {
	a.status = msg.GetString(p, "text")
	return nil
}

// OnThemeQuery answers the editor's theme query.
func (a *appShell) OnThemeQuery(p msg.Payload, src bubble.Component, name string) any {
	return "solarized"
}

func (a *appShell) Render() {
	width, height := a.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, height-2, '─', nil, style)
	}
	a.drawText(0, height-1, style, a.status)
}

// toolbar sits between the editor and the app shell. Its pass table is
// what the demo is about: renames and transforms applied mid-bubble.
type toolbar struct {
	widget
}

func newToolbar(screen tcell.Screen, transform bubble.Transform) *toolbar {
	t := &toolbar{widget: widget{Base: bubble.NewBase("toolbar"), screen: screen}}
	t.SetPassSpec(bubble.PassTable{
		"key_pressed":  bubble.Rename("save_requested"),
		"cursor_moved": transform,
	})
	return t
}

func (t *toolbar) Render() {
	t.drawText(t.x, t.y, tcell.StyleDefault.Bold(true), "[ upcast demo ]  s: save  c: move cursor  t: theme query  q: quit")
}

// editor is the leaf that spawns everything.
type editor struct {
	widget
	ctl   *bubble.Controller
	line  int
	theme string
	err   error
}

func newEditor(screen tcell.Screen, ctl *bubble.Controller) *editor {
	return &editor{widget: widget{Base: bubble.NewBase("editor"), screen: screen}, ctl: ctl}
}

func (e *editor) save() {
	_, e.err = e.ctl.Spawn(e, "key_pressed", msg.Payload{"key": "s"})
}

func (e *editor) moveCursor() {
	e.line++
	_, e.err = e.ctl.Spawn(e, "cursor_moved", msg.Payload{"line": fmt.Sprintf("%d", e.line)})
}

func (e *editor) queryTheme() {
	result, err := e.ctl.Spawn(e, "theme!", nil)
	if err != nil {
		e.err = err
		return
	}
	e.theme, _ = result.(string)
}

func (e *editor) Render() {
	style := tcell.StyleDefault
	e.drawText(e.x, e.y, style, fmt.Sprintf("line %d", e.line))
	if e.theme != "" {
		e.drawText(e.x, e.y+1, style, "theme: "+e.theme)
	}
	if e.err != nil {
		e.drawText(e.x, e.y+2, style.Foreground(tcell.ColorRed), "error: "+e.err.Error())
	}
}
