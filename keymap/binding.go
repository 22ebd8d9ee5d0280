package keymap

import (
	"fmt"
	"sort"
	"time"

	"github.com/dshills/hotkeys/key"
)

// Binding is the compiled form of one action's Spec.
type Binding struct {
	// Action is the bound action name.
	Action string

	// Alternatives are the parsed sequence patterns, in declaration order.
	Alternatives []key.Sequence

	// On is the event phase that triggers the binding.
	On key.Kind

	// Timeout is the inter-key timeout override; zero uses the manager
	// default.
	Timeout time.Duration

	// Description documents the binding.
	Description string
}

// IsSequence reports whether any alternative spans more than one combo.
func (b *Binding) IsSequence() bool {
	for _, alt := range b.Alternatives {
		if len(alt) > 1 {
			return true
		}
	}
	return false
}

// Compile parses a Map into bindings. Malformed entries are skipped, not
// fatal: each produces an entry in errs and the rest of the map still
// compiles. Bindings come back sorted by action name so dispatch order is
// deterministic across map iteration.
func Compile(m Map) (bindings []Binding, errs []error) {
	actions := make([]string, 0, len(m))
	for action := range m {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		spec := m[action]
		b, err := compileSpec(action, spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings, errs
}

func compileSpec(action string, spec Spec) (Binding, error) {
	if len(spec.Keys) == 0 {
		return Binding{}, fmt.Errorf("action %q: no key sequences", action)
	}

	on, ok := key.KindFromName(spec.On)
	if !ok {
		return Binding{}, fmt.Errorf("action %q: unknown event phase %q", action, spec.On)
	}

	alts := make([]key.Sequence, 0, len(spec.Keys))
	for _, ks := range spec.Keys {
		seq, err := key.ParseSequence(ks)
		if err != nil {
			return Binding{}, fmt.Errorf("action %q: %w", action, err)
		}
		alts = append(alts, seq)
	}

	return Binding{
		Action:       action,
		Alternatives: alts,
		On:           on,
		Timeout:      spec.Timeout,
		Description:  spec.Description,
	}, nil
}
