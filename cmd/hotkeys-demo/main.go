// Package main is an interactive demonstration of focus-scoped shortcut
// dispatch: an outer scope binds global shortcuts, an inner panel shadows
// one of them and adds its own, and a keymap file can rebind the panel live.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys"
	"github.com/dshills/hotkeys/key"
	"github.com/dshills/hotkeys/keymap"
	"github.com/dshills/hotkeys/tcellkeys"
)

func main() {
	os.Exit(run())
}

func run() int {
	var keymapPath string
	var debug bool
	flag.StringVar(&keymapPath, "keymap", "", "Path to a TOML or JSON keymap file for the panel scope")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging to hotkeys-demo.log")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	cfg := hotkeys.DefaultConfig()
	if debug {
		logFile, err := os.Create("hotkeys-demo.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer logFile.Close()
		cfg.LogLevel = hotkeys.LogLevelDebug
		cfg.LogOutput = logFile
	}

	d := &demo{
		screen: screen,
		mgr:    hotkeys.New(cfg),
	}
	d.focusOuter()

	if keymapPath != "" {
		w, err := keymap.Watch(keymapPath, d.reloadPanelKeymap,
			keymap.WithErrorHandler(func(err error) { d.setStatus("keymap: " + err.Error()) }))
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Error: failed to watch keymap: %v\n", err)
			return 1
		}
		defer w.Close()
	}

	d.loop()
	return 0
}

// demo drives two nested scopes: the outer application and an inner panel
// that can be entered and left with Tab/Escape.
type demo struct {
	screen tcell.Screen
	mgr    *hotkeys.Manager

	outerTree hotkeys.FocusTreeID
	outerComp hotkeys.ComponentID
	panelTree hotkeys.FocusTreeID
	panelComp hotkeys.ComponentID
	inPanel   bool

	panelKeymap keymap.Map
	status      string
	quit        bool
}

func (d *demo) focusOuter() {
	d.outerTree, d.outerComp = d.mgr.HandleFocus(keymap.Map{
		"quit":  keymap.Keys("ctrl+q", "command+q"),
		"save":  keymap.Keys("ctrl+s"),
		"panel": keymap.Keys("tab"),
		"help":  keymap.Keys("f1", "? ?"),
	}, hotkeys.HandlerMap{
		"quit":  func(*key.Event) { d.quit = true },
		"save":  func(*key.Event) { d.setStatus("saved (outer)") },
		"panel": func(*key.Event) { d.enterPanel() },
		"help":  func(*key.Event) { d.setStatus("help: Tab panel, Ctrl+S save, Ctrl+Q quit") },
	}, hotkeys.Options{})
}

func (d *demo) enterPanel() {
	if d.inPanel {
		return
	}
	d.inPanel = true

	km := d.panelKeymap
	if km == nil {
		km = keymap.Map{
			"save":   keymap.Keys("ctrl+s"), // shadows the outer binding
			"leave":  keymap.Keys("escape"),
			"konami": keymap.Keys("up up down down left right left right b a"),
		}
	}
	// The panel nests inside the outer scope: same focus tree, inner
	// registration.
	d.panelTree, d.panelComp = d.mgr.HandleFocus(km, hotkeys.HandlerMap{
		"save":   func(*key.Event) { d.setStatus("saved (panel)") },
		"leave":  func(*key.Event) { d.leavePanel() },
		"konami": func(*key.Event) { d.setStatus("cheat unlocked") },
	}, hotkeys.Options{})
	d.setStatus("panel focused")
}

func (d *demo) leavePanel() {
	if !d.inPanel {
		return
	}
	d.inPanel = false
	if !d.mgr.HandleBlur(d.panelTree, d.panelComp) {
		d.panelTree = hotkeys.NoTree
	}
	// The outer scope regains focus as a fresh tree.
	d.mgr.HandleBlur(d.outerTree, d.outerComp)
	d.focusOuter()
	d.setStatus("panel left")
}

func (d *demo) reloadPanelKeymap(f *keymap.File) {
	d.panelKeymap = f.Bindings
	if d.inPanel {
		d.mgr.UpdateComponent(d.panelTree, d.panelComp, d.panelKeymap, hotkeys.HandlerMap{
			"save":  func(*key.Event) { d.setStatus("saved (panel)") },
			"leave": func(*key.Event) { d.leavePanel() },
		}, hotkeys.Options{})
	}
	d.setStatus("keymap reloaded: " + f.Name)
}

func (d *demo) loop() {
	for !d.quit {
		d.draw()
		ev := d.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			kev := tcellkeys.FromEventKey(tev)
			tid, cid := d.outerTree, d.outerComp
			if d.inPanel {
				tid, cid = d.panelTree, d.panelComp
			}
			// Terminals deliver presses only; report the release right
			// after so keyup bindings and held-key bookkeeping work.
			stale := d.mgr.HandleKeyDown(kev, tid, cid)
			stale = d.mgr.HandleKeyUp(kev, tid, cid) || stale
			if stale {
				d.inPanel = false
				d.focusOuter()
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	style := tcell.StyleDefault

	scope := "outer"
	if d.inPanel {
		scope = "panel"
	}
	drawText(d.screen, 1, 1, style.Bold(true), "hotkeys demo, focused scope: "+scope)
	drawText(d.screen, 1, 3, style, "Tab: enter panel   Escape: leave panel   Ctrl+S: save   Ctrl+Q: quit")
	drawText(d.screen, 1, 4, style, "In the panel, Ctrl+S is shadowed and the konami sequence is bound.")
	if d.status != "" {
		drawText(d.screen, 1, 6, style.Foreground(tcell.ColorGreen), d.status)
	}
	d.screen.Show()
}

func (d *demo) setStatus(s string) {
	d.status = strings.TrimSpace(s)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
