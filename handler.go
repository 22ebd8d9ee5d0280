package hotkeys

import "github.com/dshills/hotkeys/key"

// Handler is invoked with the key event that completed its action's
// pattern. Handlers run synchronously on the dispatching call, after the
// manager has released its internal lock, so they may focus and blur
// scopes. They must not synthesize further key events.
type Handler func(*key.Event)

// HandlerMap binds action names to handlers. Key maps and handler maps are
// resolved independently: a scope may bind an action's keys without
// providing its handler, and dispatch falls through to the nearest outer
// scope that does.
type HandlerMap map[string]Handler
