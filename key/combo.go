package key

import (
	"strings"
	"unicode"
)

// Combo is a set of keys considered pressed simultaneously: one primary key
// plus any modifiers, at a target event phase. Combos are the unit the
// sequence matcher compares; an ordered list of combos forms a sequence.
type Combo struct {
	// Key identifies the primary key.
	Key Key

	// Rune is the character for KeyRune combos, always lower case.
	Rune rune

	// Modifiers are the modifier keys that must be held.
	Modifiers Modifier

	// On is the event phase that triggers the combo. Only the final combo
	// of a sequence consults it; intermediate steps complete on key-down.
	On Kind
}

// NewCombo creates a combo for a special key.
func NewCombo(key Key, mods Modifier) Combo {
	return Combo{Key: key, Modifiers: mods, On: KindDown}
}

// NewRuneCombo creates a combo for a character key. Upper-case runes fold
// to lower case with ModShift set, so "A" and "shift+a" are the same combo.
func NewRuneCombo(r rune, mods Modifier) Combo {
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mods = mods.With(ModShift)
	}
	return Combo{Key: KeyRune, Rune: r, Modifiers: mods, On: KindDown}
}

// SameKeys reports whether two combos name the same key set, ignoring the
// trigger phase. For character combos, Shift is part of the character and
// is ignored when neither side requires another modifier.
func (c Combo) SameKeys(other Combo) bool {
	if c.Key != other.Key {
		return false
	}
	if c.Key == KeyRune && c.Rune != other.Rune {
		return false
	}
	return c.normalizedMods() == other.normalizedMods()
}

// normalizedMods drops Shift for plain character combos, where it only
// selects the glyph.
func (c Combo) normalizedMods() Modifier {
	if c.Key == KeyRune && c.Modifiers.Without(ModShift).IsEmpty() {
		return c.Modifiers.Without(ModShift)
	}
	return c.Modifiers
}

// HasModifiers reports whether the combo requires any modifier beyond the
// glyph-selecting Shift of a character combo.
func (c Combo) HasModifiers() bool {
	return !c.normalizedMods().IsEmpty()
}

// String returns a canonical representation like "Ctrl+s" or "g".
func (c Combo) String() string {
	var sb strings.Builder
	if mods := c.Modifiers.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte('+')
	}
	if c.Key == KeyRune {
		sb.WriteRune(c.Rune)
	} else {
		sb.WriteString(c.Key.String())
	}
	return sb.String()
}

// Sequence is an ordered list of combos.
type Sequence []Combo

// String returns the space-separated combo list.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports whether two sequences name the same combos in order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i, c := range s {
		if !c.SameKeys(other[i]) {
			return false
		}
	}
	return true
}
