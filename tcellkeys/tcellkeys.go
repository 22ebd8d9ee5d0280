// Package tcellkeys translates tcell key events into hotkeys key events,
// so terminal hosts can feed a Manager directly from a tcell event loop.
// Terminals only report key presses; hosts that need keyup-triggered
// bindings typically report each event through HandleKeyDown and then
// HandleKeyUp.
package tcellkeys

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/key"
)

// FromEventKey converts a tcell key event into a key-down event.
func FromEventKey(ev *tcell.EventKey) key.Event {
	k, r, extra := convertKey(ev.Key(), ev.Rune())
	return key.Event{
		Kind:      key.KindDown,
		Key:       k,
		Rune:      r,
		Modifiers: convertMods(ev.Modifiers()).With(extra),
		Timestamp: ev.When(),
	}
}

// convertMods converts a tcell modifier mask.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// convertKey converts a tcell key, returning any modifier the key value
// itself implies (tcell folds Ctrl+letter into dedicated key codes).
func convertKey(k tcell.Key, r rune) (key.Key, rune, key.Modifier) {
	switch k {
	case tcell.KeyRune:
		if r == ' ' {
			return key.KeySpace, 0, key.ModNone
		}
		return key.KeyRune, r, key.ModNone
	case tcell.KeyEnter:
		return key.KeyEnter, 0, key.ModNone
	case tcell.KeyTab:
		return key.KeyTab, 0, key.ModNone
	case tcell.KeyEscape:
		return key.KeyEscape, 0, key.ModNone
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, 0, key.ModNone
	case tcell.KeyDelete:
		return key.KeyDelete, 0, key.ModNone
	case tcell.KeyInsert:
		return key.KeyInsert, 0, key.ModNone
	case tcell.KeyHome:
		return key.KeyHome, 0, key.ModNone
	case tcell.KeyEnd:
		return key.KeyEnd, 0, key.ModNone
	case tcell.KeyPgUp:
		return key.KeyPageUp, 0, key.ModNone
	case tcell.KeyPgDn:
		return key.KeyPageDown, 0, key.ModNone
	case tcell.KeyUp:
		return key.KeyUp, 0, key.ModNone
	case tcell.KeyDown:
		return key.KeyDown, 0, key.ModNone
	case tcell.KeyLeft:
		return key.KeyLeft, 0, key.ModNone
	case tcell.KeyRight:
		return key.KeyRight, 0, key.ModNone
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1), 0, key.ModNone
	}

	// tcell reports Ctrl+letter as a dedicated key code; unfold it.
	// Enter, Tab, Escape, and Backspace share codes with Ctrl+M/I/[/H and
	// were taken by the switch above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.KeyRune, rune('a' + k - tcell.KeyCtrlA), key.ModCtrl
	}
	if k == tcell.KeyCtrlSpace {
		return key.KeySpace, 0, key.ModCtrl
	}

	return key.KeyNone, 0, key.ModNone
}
