package keymap

import (
	"fmt"
	"time"

	"github.com/dshills/hotkeys/key"
)

// Spec declares the key sequences bound to one action.
type Spec struct {
	// Keys are alternative sequence specifications for the action.
	// Each entry is a whitespace-separated combo list: "Ctrl+S", "g g",
	// "ctrl+k ctrl+b". The first alternative to complete wins; ties break
	// by declaration order.
	Keys []string

	// On is the event phase that triggers the binding: "keydown" (default),
	// "keypress", or "keyup".
	On string

	// Timeout overrides the manager's inter-key timeout for sequence
	// alternatives of this action. Zero uses the manager default.
	Timeout time.Duration

	// Description documents the binding for help surfaces.
	Description string
}

// Keys builds a Spec from alternative sequence specifications.
func Keys(specs ...string) Spec {
	return Spec{Keys: specs}
}

// Map binds action names to key-sequence patterns. A component's Map is
// replaced wholesale on update, never merged entry by entry.
type Map map[string]Spec

// Validate checks that every action parses cleanly. Compile tolerates
// malformed entries by skipping them; Validate is for callers that want to
// fail loudly instead.
func (m Map) Validate() error {
	for action, spec := range m {
		if len(spec.Keys) == 0 {
			return fmt.Errorf("action %q: no key sequences", action)
		}
		for _, ks := range spec.Keys {
			if _, err := key.ParseSequence(ks); err != nil {
				return fmt.Errorf("action %q: %w", action, err)
			}
		}
		if _, ok := key.KindFromName(spec.On); !ok {
			return fmt.Errorf("action %q: unknown event phase %q", action, spec.On)
		}
	}
	return nil
}
