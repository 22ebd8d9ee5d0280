package key

import "time"

// heldKey identifies a physical key for the held-down set.
type heldKey struct {
	key Key
	r   rune
}

// CompletedCombo is a combo recorded in the history with the time it
// completed, used for sequence timeout checks.
type CompletedCombo struct {
	Combo Combo
	Time  time.Time
}

// History tracks the keys currently held down and the combos completed since
// the last dispatch or reset. It belongs to exactly one focus tree at a
// time; the manager resets it whenever a new tree takes the front of the
// focus stack.
type History struct {
	held      map[heldKey]time.Time
	completed []CompletedCombo
	limit     int
}

// DefaultHistoryLimit caps the completed-combo record. Sequences longer
// than this cannot match, which is far beyond any practical binding.
const DefaultHistoryLimit = 32

// NewHistory creates an empty history with the given completed-combo cap.
// A non-positive limit uses DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		held:  make(map[heldKey]time.Time),
		limit: limit,
	}
}

// KeyDown records a key-down event: the key joins the held set and its
// combo is appended to the completed record. Modifier-only events are
// ignored. Auto-repeat of an already-held key appends again, which is what
// lets held combos repeat-fire.
func (h *History) KeyDown(ev Event) {
	if ev.IsModifierKey() {
		return
	}
	id := heldKey{key: ev.Key, r: held(ev)}
	h.held[id] = ev.Timestamp
	h.completed = append(h.completed, CompletedCombo{Combo: ev.Combo(), Time: ev.Timestamp})
	if len(h.completed) > h.limit {
		h.completed = h.completed[len(h.completed)-h.limit:]
	}
}

// KeyUp removes the key from the held set and reports whether any
// non-modifier keys remain held.
func (h *History) KeyUp(ev Event) (anyHeld bool) {
	if !ev.IsModifierKey() {
		delete(h.held, heldKey{key: ev.Key, r: held(ev)})
	}
	return len(h.held) > 0
}

// held normalizes the rune identity of a key for the held set, so that a
// shifted press and its unshifted release delete the same entry.
func held(ev Event) rune {
	if ev.Key != KeyRune {
		return 0
	}
	return ev.Combo().Rune
}

// HeldCount returns the number of non-modifier keys currently down.
func (h *History) HeldCount() int {
	return len(h.held)
}

// IsHeld reports whether the combo's primary key is currently down.
func (h *History) IsHeld(c Combo) bool {
	r := rune(0)
	if c.Key == KeyRune {
		r = c.Rune
	}
	_, ok := h.held[heldKey{key: c.Key, r: r}]
	return ok
}

// Completed returns the completed combos in order, oldest first.
func (h *History) Completed() []CompletedCombo {
	return h.completed
}

// ClearCompleted discards the completed-combo record, leaving held keys
// intact so held combos can repeat-fire.
func (h *History) ClearCompleted() {
	h.completed = h.completed[:0]
}

// KeepLast trims the completed record to its most recent n entries.
func (h *History) KeepLast(n int) {
	if n < len(h.completed) {
		h.completed = append(h.completed[:0], h.completed[len(h.completed)-n:]...)
	}
}

// Reset clears both the held set and the completed record.
func (h *History) Reset() {
	h.held = make(map[heldKey]time.Time)
	h.completed = h.completed[:0]
}
