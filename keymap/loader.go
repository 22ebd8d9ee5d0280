package keymap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// File is a keymap loaded from disk.
type File struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the declared action-to-sequence mappings.
	Bindings Map
}

// LoadFile loads a keymap file, selecting the format by extension
// (.toml, .json).
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(data)
	case ".json":
		return LoadJSON(data)
	default:
		return nil, fmt.Errorf("unsupported keymap format %q", filepath.Ext(path))
	}
}

// tomlFile is the TOML structure for keymap files.
type tomlFile struct {
	Name     string                 `toml:"name"`
	Bindings map[string]tomlBinding `toml:"bindings"`
}

type tomlBinding struct {
	Keys        []string `toml:"keys"`
	On          string   `toml:"on,omitempty"`
	TimeoutMS   int64    `toml:"timeout_ms,omitempty"`
	Description string   `toml:"description,omitempty"`
}

// LoadTOML parses a TOML keymap document.
//
//	name = "editor"
//
//	[bindings.save]
//	keys = ["ctrl+s", "command+s"]
//
//	[bindings.quit]
//	keys = ["q q"]
//	on = "keyup"
func LoadTOML(data []byte) (*File, error) {
	var doc tomlFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	f := &File{
		Name:     doc.Name,
		Bindings: make(Map, len(doc.Bindings)),
	}
	for action, b := range doc.Bindings {
		f.Bindings[action] = Spec{
			Keys:        b.Keys,
			On:          b.On,
			Timeout:     time.Duration(b.TimeoutMS) * time.Millisecond,
			Description: b.Description,
		}
	}
	return f, nil
}

// LoadReader loads a TOML keymap from a reader.
func LoadReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	return LoadTOML(data)
}

// LoadJSON parses a JSON keymap document. Binding values are shape-tolerant:
// a plain string, an array of alternative sequences, or an object with
// "keys" (string or array), "on", "timeout_ms", and "description" fields.
//
//	{"name": "editor",
//	 "bindings": {
//	   "save":   "ctrl+s",
//	   "close":  ["ctrl+w", "command+w"],
//	   "delete": {"keys": "del", "on": "keyup"}}}
func LoadJSON(data []byte) (*File, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decoding keymap: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	f := &File{
		Name:     doc.Get("name").String(),
		Bindings: make(Map),
	}

	var parseErr error
	doc.Get("bindings").ForEach(func(action, value gjson.Result) bool {
		spec, err := jsonSpec(value)
		if err != nil {
			parseErr = fmt.Errorf("action %q: %w", action.String(), err)
			return false
		}
		f.Bindings[action.String()] = spec
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return f, nil
}

func jsonSpec(value gjson.Result) (Spec, error) {
	switch {
	case value.Type == gjson.String:
		return Spec{Keys: []string{value.String()}}, nil
	case value.IsArray():
		return Spec{Keys: jsonStrings(value)}, nil
	case value.IsObject():
		keys := value.Get("keys")
		var alts []string
		if keys.IsArray() {
			alts = jsonStrings(keys)
		} else if keys.Type == gjson.String {
			alts = []string{keys.String()}
		}
		return Spec{
			Keys:        alts,
			On:          value.Get("on").String(),
			Timeout:     time.Duration(value.Get("timeout_ms").Int()) * time.Millisecond,
			Description: value.Get("description").String(),
		}, nil
	default:
		return Spec{}, fmt.Errorf("unsupported binding shape %s", value.Type)
	}
}

func jsonStrings(value gjson.Result) []string {
	arr := value.Array()
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		out = append(out, v.String())
	}
	return out
}

// JSON renders the keymap as a JSON document in the object form accepted by
// LoadJSON, with actions in sorted order.
func (f *File) JSON() ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if f.Name != "" {
		if out, err = sjson.SetBytes(out, "name", f.Name); err != nil {
			return nil, err
		}
	}

	actions := make([]string, 0, len(f.Bindings))
	for action := range f.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		spec := f.Bindings[action]
		base := "bindings." + escapePath(action)
		if out, err = sjson.SetBytes(out, base+".keys", spec.Keys); err != nil {
			return nil, err
		}
		if spec.On != "" {
			if out, err = sjson.SetBytes(out, base+".on", spec.On); err != nil {
				return nil, err
			}
		}
		if spec.Timeout > 0 {
			if out, err = sjson.SetBytes(out, base+".timeout_ms", spec.Timeout.Milliseconds()); err != nil {
				return nil, err
			}
		}
		if spec.Description != "" {
			if out, err = sjson.SetBytes(out, base+".description", spec.Description); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// escapePath escapes sjson path syntax in action names.
func escapePath(s string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`, "|", `\|`)
	return r.Replace(s)
}
