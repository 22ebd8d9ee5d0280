package hotkeys

import (
	"github.com/dshills/hotkeys/keymap"
)

// FocusTreeID identifies one focus-trap activation. Ids increase
// monotonically over the manager's lifetime and are never reused, so a
// cached id from a popped tree can only miss, never alias a newer tree.
// The zero value means "no tree".
type FocusTreeID int

// NoTree is the FocusTreeID of a component that has never seen focus.
const NoTree FocusTreeID = 0

// ComponentID identifies one registration within a focus tree, assigned in
// registration order (outer components register first). Ids are unique for
// the tree's lifetime.
type ComponentID int

// registration is one component's bindings and handlers within a tree.
// Owned exclusively by the manager: created on focus, replaced wholesale on
// update, removed on blur.
type registration struct {
	id       ComponentID
	bindings []keymap.Binding
	handlers HandlerMap
	opts     Options
}

// focusTree is one focus-trap activation: an ordered list of registrations,
// outermost first.
type focusTree struct {
	id     FocusTreeID
	regs   []*registration
	nextID ComponentID
}

// add stores a new registration and returns its id.
func (t *focusTree) add(bindings []keymap.Binding, handlers HandlerMap, opts Options) ComponentID {
	id := t.nextID
	t.nextID++
	t.regs = append(t.regs, &registration{
		id:       id,
		bindings: bindings,
		handlers: handlers,
		opts:     opts,
	})
	return id
}

// find returns the registration with the given id, or nil.
func (t *focusTree) find(id ComponentID) *registration {
	for _, r := range t.regs {
		if r.id == id {
			return r
		}
	}
	return nil
}

// remove deletes the registration with the given id and reports whether it
// existed.
func (t *focusTree) remove(id ComponentID) bool {
	for i, r := range t.regs {
		if r.id == id {
			t.regs = append(t.regs[:i], t.regs[i+1:]...)
			return true
		}
	}
	return false
}

// chain returns the registrations visible from the given component:
// itself and its ancestors (everything registered at or before it),
// innermost first. A component never sees bindings from later-registered
// siblings.
func (t *focusTree) chain(id ComponentID) []*registration {
	end := -1
	for i, r := range t.regs {
		if r.id == id {
			end = i
			break
		}
	}
	if end == -1 {
		return nil
	}

	out := make([]*registration, 0, end+1)
	for i := end; i >= 0; i-- {
		out = append(out, t.regs[i])
	}
	return out
}

// resolved is one visible binding with the component that declared it.
type resolved struct {
	binding *keymap.Binding
	origin  *registration
}

// resolveBindings flattens the chain into a dispatch-ordered binding list:
// innermost first, and for a shadowed action name only the innermost
// declaration survives.
func resolveBindings(chain []*registration) []resolved {
	var out []resolved
	seen := make(map[string]bool)
	for _, reg := range chain {
		for i := range reg.bindings {
			b := &reg.bindings[i]
			if seen[b.Action] {
				continue
			}
			seen[b.Action] = true
			out = append(out, resolved{binding: b, origin: reg})
		}
	}
	return out
}

// resolveHandler finds the innermost handler for an action within the
// chain, independently of which component's key map matched.
func resolveHandler(chain []*registration, action string) Handler {
	for _, reg := range chain {
		if h, ok := reg.handlers[action]; ok && h != nil {
			return h
		}
	}
	return nil
}
