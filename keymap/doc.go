// Package keymap defines action-to-key-sequence maps, their compiled form
// used by the matcher, and loading of keymap files (TOML or JSON) with
// optional live reload.
package keymap
