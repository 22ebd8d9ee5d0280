// Package hotkeys dispatches keyboard shortcuts across nested focus scopes.
//
// Nested UI scopes declare key maps (action name to key-sequence pattern)
// and handler maps (action name to function) when they gain focus. A
// Manager stacks one focus tree per focus activation, resolves bindings
// innermost-first so inner scopes shadow outer ones, matches key events
// against single combos, ordered sequences, and alternatives, and invokes
// the winning handler. Inner scopes may bind keys without handling them;
// dispatch falls through to the nearest outer handler for the action.
//
// The Manager is an explicit context object, not a package singleton:
// construct exactly one per application surface and route that surface's
// focus and key events through it.
//
//	mgr := hotkeys.New(hotkeys.DefaultConfig())
//	tid, cid := mgr.HandleFocus(keymap.Map{
//		"save": keymap.Keys("ctrl+s", "command+s"),
//	}, hotkeys.HandlerMap{
//		"save": func(ev *key.Event) { save() },
//	}, hotkeys.Options{})
//	...
//	stale := mgr.HandleKeyDown(ev, tid, cid)
//
// Failures never propagate to the host: stale ids, malformed patterns, and
// bad configuration degrade to "no dispatch" with a logged warning.
package hotkeys
