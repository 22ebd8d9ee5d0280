package hotkeys

import (
	"sync"

	"github.com/dshills/hotkeys/key"
	"github.com/dshills/hotkeys/keymap"
	"github.com/dshills/hotkeys/match"
)

// Manager tracks focus-scoped shortcut registrations and dispatches key
// events to the innermost matching handler.
//
// A Manager replaces the global singleton such libraries usually hide: the
// host constructs exactly one per application surface and routes every
// focus, blur, and key event of that surface through it. All operations are
// synchronous; the mutex only guards against accidental cross-goroutine
// use, not concurrent dispatch, which the event-driven contract already
// rules out.
type Manager struct {
	mu sync.Mutex

	cfg     Config
	log     *Logger
	matcher match.Matcher

	// trees is the focus stack, front (index 0) = most recently focused.
	trees      []*focusTree
	nextTreeID FocusTreeID

	// resetOnNextFocus is armed by any blur: the next focus event starts a
	// fresh tree instead of joining the front one. Trees that still hold
	// registrations stay on the stack, shadowed, until they drain.
	resetOnNextFocus bool

	// hist belongs to the front tree; it is reset whenever a new tree is
	// pushed.
	hist *key.History
}

// New creates a Manager. Invalid configuration values fall back to their
// defaults with a warning; construction never fails.
func New(cfg Config) *Manager {
	log := NewLogger(cfg.LogLevel, cfg.LogOutput)
	cfg.normalize(log)
	log.SetLevel(cfg.LogLevel)

	return &Manager{
		cfg:        cfg,
		log:        log,
		matcher:    match.Matcher{Timeout: cfg.SequenceTimeout},
		nextTreeID: NoTree + 1,
		hist:       key.NewHistory(cfg.HistoryLimit),
	}
}

// HandleFocus registers a component that just gained focus. If the focus
// stack is empty or a blur has occurred since the last focus, a new focus
// tree is pushed and the key history resets; otherwise the component joins
// the front tree as its innermost registration. The returned ids accompany
// every subsequent event for this component.
func (m *Manager) HandleFocus(km keymap.Map, handlers HandlerMap, opts Options) (FocusTreeID, ComponentID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bindings := m.compile(km)

	if m.resetOnNextFocus || len(m.trees) == 0 {
		t := &focusTree{id: m.nextTreeID}
		m.nextTreeID++
		m.trees = append([]*focusTree{t}, m.trees...)
		m.resetOnNextFocus = false
		m.hist.Reset()
		m.log.Debug("new focus tree %d", t.id)
	}

	t := m.trees[0]
	cid := t.add(bindings, handlers, opts)
	m.log.Debug("registered component %d in tree %d (%d bindings)", cid, t.id, len(bindings))
	return t.id, cid
}

// UpdateComponent replaces a registration's key map and handlers wholesale.
// Unknown ids indicate a stale update after unmount; they log a warning and
// change nothing.
func (m *Manager) UpdateComponent(tid FocusTreeID, cid ComponentID, km keymap.Map, handlers HandlerMap, opts Options) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.findTree(tid)
	if t == nil {
		m.log.Warn("update for unknown focus tree %d", tid)
		return
	}
	reg := t.find(cid)
	if reg == nil {
		m.log.Warn("update for unknown component %d in tree %d", cid, tid)
		return
	}

	reg.bindings = m.compile(km)
	reg.handlers = handlers
	reg.opts = opts
}

// HandleBlur removes a registration. It returns true while sibling
// registrations keep the tree alive, meaning the caller must keep tracking
// its focus-tree id; false means the tree is gone and the id is dead. Any
// blur arms a fresh tree for the next focus event.
func (m *Manager) HandleBlur(tid FocusTreeID, cid ComponentID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resetOnNextFocus = true

	t := m.findTree(tid)
	if t == nil {
		m.log.Warn("blur for unknown focus tree %d", tid)
		return false
	}
	if !t.remove(cid) {
		m.log.Warn("blur for unknown component %d in tree %d", cid, tid)
	}

	if len(t.regs) > 0 {
		return true
	}

	m.dropTree(tid)
	m.log.Debug("focus tree %d drained", tid)
	return false
}

// HandleKeyDown dispatches a key-down event for the given component.
// The returned bool is true only when the ids no longer resolve to a live
// registration: the caller must drop its cached focus-tree id and
// re-register on the next focus event.
func (m *Manager) HandleKeyDown(ev key.Event, tid FocusTreeID, cid ComponentID) bool {
	ev.Kind = key.KindDown
	return m.handleKeyEvent(ev, tid, cid)
}

// HandleKeyPress dispatches a key-press event for the given component.
func (m *Manager) HandleKeyPress(ev key.Event, tid FocusTreeID, cid ComponentID) bool {
	ev.Kind = key.KindPress
	return m.handleKeyEvent(ev, tid, cid)
}

// HandleKeyUp dispatches a key-up event for the given component.
func (m *Manager) HandleKeyUp(ev key.Event, tid FocusTreeID, cid ComponentID) bool {
	ev.Kind = key.KindUp
	return m.handleKeyEvent(ev, tid, cid)
}

// StackDepth returns the number of live focus trees.
func (m *Manager) StackDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.trees)
}

// handleKeyEvent is the central dispatch routine. The winning handler runs
// after the lock is released, so handlers may call back into the manager
// (entering or leaving scopes from a shortcut is the common case).
func (m *Manager) handleKeyEvent(ev key.Event, tid FocusTreeID, cid ComponentID) bool {
	m.mu.Lock()
	h, stale := m.routeKeyEvent(ev, tid, cid)
	m.mu.Unlock()

	if h != nil {
		h(&ev)
	}
	return stale
}

// routeKeyEvent validates the ids, records the event in the history, and
// resolves the handler to fire, if any. Caller holds m.mu.
func (m *Manager) routeKeyEvent(ev key.Event, tid FocusTreeID, cid ComponentID) (Handler, bool) {
	if tid == NoTree {
		return nil, false
	}

	t := m.findTree(tid)
	reg := (*registration)(nil)
	if t != nil {
		reg = t.find(cid)
	}

	// The ignore predicate runs before stale-id handling so that filtered
	// events are a pure no-op even during unmount races.
	if m.ignores(reg, &ev) {
		return nil, false
	}

	if t == nil {
		m.log.Warn("key event for unknown focus tree %d", tid)
		return nil, true
	}
	if reg == nil {
		m.log.Warn("key event for unknown component %d in tree %d", cid, tid)
		return nil, true
	}

	if t != m.trees[0] {
		// Shadowed tree: its components no longer hold real focus.
		m.log.Debug("dropping key event for shadowed tree %d", tid)
		return nil, false
	}

	switch ev.Kind {
	case key.KindDown:
		m.hist.KeyDown(ev)
	case key.KindUp:
		m.hist.KeyUp(ev)
	}

	return m.dispatch(t.chain(cid), ev), false
}

// dispatch resolves the visible bindings innermost-first, returns the
// handler of the first Complete match, and maintains the history per the
// outcome.
func (m *Manager) dispatch(chain []*registration, ev key.Event) Handler {
	best := match.None
	for _, r := range resolveBindings(chain) {
		matcher := m.matcher
		if t := r.origin.opts.SequenceTimeout; t > 0 {
			matcher = match.Matcher{Timeout: t}
		}

		result := matcher.Match(m.hist, r.binding, ev)
		if result > best {
			best = result
		}
		if result != match.Complete {
			continue
		}

		h := resolveHandler(chain, r.binding.Action)
		if h == nil {
			m.log.Debug("no handler for matched action %q", r.binding.Action)
			best = match.Partial // matched pattern consumed the event shape; keep history
			continue
		}

		m.log.Debug("dispatching %q on %s", r.binding.Action, ev.String())
		m.hist.ClearCompleted()
		return h
	}

	// No dispatch. Trim dead history so stale combos cannot revive a
	// sequence later. Partial progress is preserved: releasing a key
	// between the steps of a typed sequence must not discard it.
	if best == match.None {
		switch ev.Kind {
		case key.KindUp:
			if m.hist.HeldCount() == 0 {
				m.hist.Reset()
			}
		case key.KindDown:
			// The current combo may still start a new sequence.
			m.hist.KeepLast(1)
		}
	}
	return nil
}

// ignores applies the component predicate, falling back to the manager
// predicate.
func (m *Manager) ignores(reg *registration, ev *key.Event) bool {
	if reg != nil && reg.opts.IgnoreEvents != nil {
		return reg.opts.IgnoreEvents(ev)
	}
	if m.cfg.IgnoreEvents != nil {
		return m.cfg.IgnoreEvents(ev)
	}
	return false
}

// compile parses a key map, logging malformed actions at warn level and
// keeping the rest. Registration never fails outright.
func (m *Manager) compile(km keymap.Map) []keymap.Binding {
	bindings, errs := keymap.Compile(km)
	for _, err := range errs {
		m.log.Warn("skipping binding: %v", err)
	}
	return bindings
}

func (m *Manager) findTree(tid FocusTreeID) *focusTree {
	for _, t := range m.trees {
		if t.id == tid {
			return t
		}
	}
	return nil
}

func (m *Manager) dropTree(tid FocusTreeID) {
	for i, t := range m.trees {
		if t.id == tid {
			m.trees = append(m.trees[:i], m.trees[i+1:]...)
			return
		}
	}
}
