// Package key defines keyboard keys, modifiers, events, and combos, plus the
// parser for the textual binding specifications used in key maps
// ("Ctrl+S", "command+k", "g g") and the held/completed-combo history that
// sequence matching runs against.
package key
