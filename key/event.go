package key

import (
	"strings"
	"time"
	"unicode"
)

// Kind identifies the phase of a key event.
type Kind uint8

const (
	// KindDown is a key-down event.
	KindDown Kind = iota

	// KindPress is a key-press event (character production).
	KindPress

	// KindUp is a key-up event.
	KindUp
)

// String returns the event phase name.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "keydown"
	case KindPress:
		return "keypress"
	case KindUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// KindFromName returns the Kind for a phase name like "keydown".
// Returns KindDown and false if the name is not recognized.
func KindFromName(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "keydown", "down":
		return KindDown, true
	case "keypress", "press":
		return KindPress, true
	case "keyup", "up":
		return KindUp, true
	default:
		return KindDown, false
	}
}

// Event represents a single key event as delivered by the host UI layer.
type Event struct {
	// Kind is the event phase (down, press, up).
	Kind Kind

	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys at event time.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(kind Kind, key Key, r rune, mods Modifier) Event {
	return Event{
		Kind:      kind,
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(kind Kind, r rune, mods Modifier) Event {
	return NewEvent(kind, KeyRune, r, mods)
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(kind Kind, key Key, mods Modifier) Event {
	return NewEvent(kind, key, 0, mods)
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModifierKey reports whether the event's key is itself a modifier
// (Shift, Ctrl, Alt, Meta pressed on its own). Such events carry the
// modifier in Modifiers with no key identity of their own.
func (e Event) IsModifierKey() bool {
	return e.Key == KeyNone && e.Rune == 0
}

// Combo returns the combo this event completes: the key identity plus the
// modifiers held at event time, at the event's phase. Character runes are
// folded to lower case; the case information lives in ModShift.
func (e Event) Combo() Combo {
	c := Combo{
		Key:       e.Key,
		Rune:      e.Rune,
		Modifiers: e.Modifiers,
		On:        e.Kind,
	}
	if e.IsRune() && unicode.IsUpper(e.Rune) {
		c.Rune = unicode.ToLower(e.Rune)
		c.Modifiers = c.Modifiers.With(ModShift)
	}
	return c
}

// String returns a canonical representation like "Ctrl+s", "Enter", "a".
func (e Event) String() string {
	return e.Combo().String()
}
