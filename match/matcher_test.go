package match

import (
	"testing"
	"time"

	"github.com/dshills/hotkeys/key"
	"github.com/dshills/hotkeys/keymap"
)

func compileBinding(t *testing.T, spec keymap.Spec) *keymap.Binding {
	t.Helper()
	bindings, errs := keymap.Compile(keymap.Map{"test": spec})
	if len(errs) > 0 {
		t.Fatalf("compile errors: %v", errs)
	}
	if len(bindings) != 1 {
		t.Fatalf("compiled %d bindings, want 1", len(bindings))
	}
	return &bindings[0]
}

func eventFor(spec string, kind key.Kind, at time.Time) key.Event {
	c := key.MustParseSequence(spec)[0]
	return key.Event{Kind: kind, Key: c.Key, Rune: c.Rune, Modifiers: c.Modifiers, Timestamp: at}
}

// press records a key-down in the history and returns the event.
func press(h *key.History, spec string, at time.Time) key.Event {
	ev := eventFor(spec, key.KindDown, at)
	h.KeyDown(ev)
	return ev
}

// release records a key-up in the history and returns the event.
func release(h *key.History, spec string, at time.Time) key.Event {
	ev := eventFor(spec, key.KindUp, at)
	h.KeyUp(ev)
	return ev
}

func TestMatchSingleCombo(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("ctrl+s"))
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "ctrl+s", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("Match = %v, want Complete", got)
	}
}

func TestMatchWrongPhase(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("ctrl+s"))
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "ctrl+s", now)
	ev := release(h, "ctrl+s", now)
	if got := m.Match(h, b, ev); got != None {
		t.Errorf("keyup against keydown binding = %v, want None", got)
	}
}

func TestMatchKeyUpBinding(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Spec{Keys: []string{"delete"}, On: "keyup"})
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "delete", now)
	if got := m.Match(h, b, ev); got != None {
		t.Errorf("keydown against keyup binding = %v, want None", got)
	}

	ev = release(h, "delete", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("keyup = %v, want Complete", got)
	}
}

func TestMatchExtraHeldKeyDefeatsPlainCombo(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("a"))
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "x", now)
	ev := press(h, "a", now)
	if got := m.Match(h, b, ev); got != None {
		t.Errorf("extra held key = %v, want None", got)
	}
}

func TestMatchExtraHeldKeyAllowedForModifierCombo(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("ctrl+s"))
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "x", now)
	ev := press(h, "ctrl+s", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("modifier combo with extra held key = %v, want Complete", got)
	}
}

func TestMatchSequenceInOrder(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("a b"))
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "a", now)
	if got := m.Match(h, b, ev); got != Partial {
		t.Errorf("after a: Match = %v, want Partial", got)
	}
	release(h, "a", now)

	ev = press(h, "b", now.Add(100*time.Millisecond))
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("after a b: Match = %v, want Complete", got)
	}
}

func TestMatchSequenceReordered(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("a b"))
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "b", now)
	release(h, "b", now)
	ev := press(h, "a", now.Add(50*time.Millisecond))
	if got := m.Match(h, b, ev); got != Partial {
		// "a" starts the sequence over; it must never Complete.
		t.Errorf("after b a: Match = %v, want Partial", got)
	}
}

func TestMatchSequenceTimeout(t *testing.T) {
	m := New(200 * time.Millisecond)
	b := compileBinding(t, keymap.Keys("a b"))
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "a", now)
	release(h, "a", now)

	// "b" lands after the inter-key timeout: progress is abandoned and
	// "b" alone must not complete the sequence.
	ev := press(h, "b", now.Add(500*time.Millisecond))
	if got := m.Match(h, b, ev); got != None {
		t.Errorf("after timeout: Match = %v, want None", got)
	}
}

func TestMatchSequenceBindingTimeoutOverride(t *testing.T) {
	m := New(200 * time.Millisecond)
	b := compileBinding(t, keymap.Spec{Keys: []string{"a b"}, Timeout: 2 * time.Second})
	h := key.NewHistory(0)
	now := time.Now()

	press(h, "a", now)
	release(h, "a", now)
	ev := press(h, "b", now.Add(time.Second))
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("within override timeout: Match = %v, want Complete", got)
	}
}

func TestMatchThreeStepSequence(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("g g v"))
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "g", now)
	if got := m.Match(h, b, ev); got != Partial {
		t.Fatalf("after g: %v, want Partial", got)
	}
	release(h, "g", now)

	ev = press(h, "g", now.Add(50*time.Millisecond))
	if got := m.Match(h, b, ev); got != Partial {
		t.Fatalf("after g g: %v, want Partial", got)
	}
	release(h, "g", now.Add(60*time.Millisecond))

	ev = press(h, "v", now.Add(100*time.Millisecond))
	if got := m.Match(h, b, ev); got != Complete {
		t.Fatalf("after g g v: %v, want Complete", got)
	}
}

func TestMatchAlternation(t *testing.T) {
	m := New(0)
	b := compileBinding(t, keymap.Keys("ctrl+s", "command+s"))
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "command+s", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("second alternative = %v, want Complete", got)
	}

	h.Reset()
	ev = press(h, "ctrl+s", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("first alternative = %v, want Complete", got)
	}
}

func TestMatchAlternationMixedShapes(t *testing.T) {
	// A single combo and a sequence bound to one action: the combo wins
	// immediately, the sequence reports partial progress.
	m := New(0)
	b := compileBinding(t, keymap.Keys("x", "a b"))
	h := key.NewHistory(0)
	now := time.Now()

	ev := press(h, "a", now)
	if got := m.Match(h, b, ev); got != Partial {
		t.Errorf("after a: %v, want Partial", got)
	}

	h.Reset()
	ev = press(h, "x", now)
	if got := m.Match(h, b, ev); got != Complete {
		t.Errorf("after x: %v, want Complete", got)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{None, "none"},
		{Partial, "partial"},
		{Complete, "complete"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
