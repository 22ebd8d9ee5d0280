// Package match implements the pure matching logic that decides whether a
// key-event history satisfies a binding's pattern: a single combo, an
// ordered sequence of combos, or a set of alternatives.
package match

import (
	"time"

	"github.com/dshills/hotkeys/key"
	"github.com/dshills/hotkeys/keymap"
)

// Result reports how far a history got toward satisfying a pattern.
type Result int

const (
	// None means the pattern is not satisfied and no prefix of it is.
	None Result = iota

	// Partial means a strict prefix of the pattern has been satisfied.
	// Callers use Partial to avoid discarding history prematurely.
	Partial

	// Complete means the pattern is fully satisfied by the current event.
	Complete
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case None:
		return "none"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Matcher evaluates bindings against a key history.
type Matcher struct {
	// Timeout is the inter-key timeout for sequence patterns when the
	// binding carries no override.
	Timeout time.Duration
}

// DefaultTimeout is the inter-key timeout used when none is configured.
const DefaultTimeout = 1000 * time.Millisecond

// New creates a matcher with the given default sequence timeout.
// A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Matcher{Timeout: timeout}
}

// Match evaluates a binding against the history, where ev is the event that
// just updated the history. Alternatives are evaluated independently; the
// first Complete branch wins and earlier declaration breaks ties.
func (m *Matcher) Match(hist *key.History, b *keymap.Binding, ev key.Event) Result {
	best := None
	for _, alt := range b.Alternatives {
		var r Result
		if len(alt) == 1 {
			r = m.matchCombo(alt[0], b.On, hist, ev)
		} else if len(alt) > 1 {
			r = m.matchSequence(alt, b, hist, ev)
		}
		if r == Complete {
			return Complete
		}
		if r > best {
			best = r
		}
	}
	return best
}

// matchCombo matches a single-combo pattern: the event must be at the
// binding's trigger phase, name exactly the pattern's key set, and no extra
// non-modifier keys may be held unless the pattern itself carries modifiers.
func (m *Matcher) matchCombo(c key.Combo, on key.Kind, hist *key.History, ev key.Event) Result {
	if ev.Kind != on {
		return None
	}
	if !c.SameKeys(ev.Combo()) {
		return None
	}

	extras := hist.HeldCount()
	if hist.IsHeld(c) {
		extras--
	}
	if extras > 0 && !c.HasModifiers() {
		return None
	}
	return Complete
}

// matchSequence matches an ordered multi-combo pattern against the most
// recent completed combos. Progress expires when the gap between
// consecutive combos exceeds the timeout; an expired prefix never revives,
// the pattern must restart from its first combo.
func (m *Matcher) matchSequence(seq key.Sequence, b *keymap.Binding, hist *key.History, ev key.Event) Result {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = m.Timeout
	}

	comp := hist.Completed()
	n := len(comp)
	maxLen := len(seq)
	if n < maxLen {
		maxLen = n
	}

	for l := maxLen; l >= 1; l-- {
		if !suffixSatisfies(comp[n-l:], seq[:l], timeout) {
			continue
		}
		if l < len(seq) {
			return Partial
		}
		// All combos satisfied; fire only at the trigger phase of the
		// final combo (keydown completes it, keyup triggers afterwards
		// for on = "keyup" bindings).
		if ev.Kind == b.On && seq[l-1].SameKeys(ev.Combo()) {
			return Complete
		}
		return Partial
	}
	return None
}

// suffixSatisfies reports whether the completed combos match the pattern
// prefix in order within the timeout between consecutive combos.
func suffixSatisfies(comp []key.CompletedCombo, pat key.Sequence, timeout time.Duration) bool {
	for i := range pat {
		if !comp[i].Combo.SameKeys(pat[i]) {
			return false
		}
		if i > 0 && comp[i].Time.Sub(comp[i-1].Time) > timeout {
			return false
		}
	}
	return true
}
