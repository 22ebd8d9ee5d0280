package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseCombo parses a single combo specification into a Combo.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "command+k", "Ctrl+Shift+P"
//   - Vim-style: "<C-s>", "<A-f>", "<C-S-p>", "<CR>", "<Esc>"
func ParseCombo(spec string) (Combo, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Combo{}, ErrEmptySpec
	}

	// Vim-style <...> notation
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	// modifier+key format (Ctrl+S, command+k); a lone "+" is the plus key
	if strings.Contains(spec, "+") && len(spec) > 1 {
		return parseModifierStyle(spec)
	}

	return parseSingle(spec)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Combo, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Combo{}, ErrInvalidSpec
	}

	parts := strings.Split(inner, "-")

	var mods Modifier
	keyPart := parts[len(parts)-1]
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		switch p {
		case "c":
			mods = mods.With(ModCtrl)
		case "a":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "m", "d": // D is Vim's notation for Command/Meta
			mods = mods.With(ModMeta)
		default:
			return Combo{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Combo, error) {
	parts := strings.Split(spec, "+")
	if len(parts) < 2 {
		return Combo{}, ErrInvalidSpec
	}

	keyPart := strings.TrimSpace(parts[len(parts)-1])
	modParts := parts[:len(parts)-1]
	if keyPart == "" {
		// "ctrl++" binds Ctrl with the plus key
		keyPart = "plus"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Combo{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Combo, error) {
	if key := KeyFromName(spec); key != KeyNone {
		return NewCombo(key, ModNone), nil
	}

	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRuneCombo(runes[0], ModNone), nil
	}

	return Combo{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Combo, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Combo{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "lt":
		return Combo{Key: KeyRune, Rune: '<', Modifiers: mods, On: KindDown}, nil
	case "gt":
		return Combo{Key: KeyRune, Rune: '>', Modifiers: mods, On: KindDown}, nil
	case "bar":
		return Combo{Key: KeyRune, Rune: '|', Modifiers: mods, On: KindDown}, nil
	case "bslash":
		return Combo{Key: KeyRune, Rune: '\\', Modifiers: mods, On: KindDown}, nil
	case "plus":
		return Combo{Key: KeyRune, Rune: '+', Modifiers: mods, On: KindDown}, nil
	}

	if key := KeyFromName(keyPart); key != KeyNone {
		return NewCombo(key, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		r := runes[0]
		if !mods.IsEmpty() {
			// Modified characters are matched case-insensitively.
			r = unicode.ToLower(r)
		}
		c := NewRuneCombo(r, mods)
		return c, nil
	}

	return Combo{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// ParseSequence parses a whitespace-separated sequence specification like
// "g g", "ctrl+k ctrl+b", or a single combo like "Ctrl+S".
func ParseSequence(spec string) (Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	parts := strings.Fields(spec)
	seq := make(Sequence, 0, len(parts))
	for _, part := range parts {
		combo, err := ParseCombo(part)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", spec, err)
		}
		seq = append(seq, combo)
	}
	return seq, nil
}

// MustParseSequence parses a sequence specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseSequence(spec string) Sequence {
	seq, err := ParseSequence(spec)
	if err != nil {
		panic("invalid key sequence: " + spec + ": " + err.Error())
	}
	return seq
}
