package key

import (
	"errors"
	"testing"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Combo
	}{
		{
			name: "single character",
			spec: "a",
			want: Combo{Key: KeyRune, Rune: 'a'},
		},
		{
			name: "uppercase folds to shift",
			spec: "A",
			want: Combo{Key: KeyRune, Rune: 'a', Modifiers: ModShift},
		},
		{
			name: "ctrl combo",
			spec: "Ctrl+S",
			want: Combo{Key: KeyRune, Rune: 's', Modifiers: ModCtrl},
		},
		{
			name: "lowercase modifier name",
			spec: "ctrl+s",
			want: Combo{Key: KeyRune, Rune: 's', Modifiers: ModCtrl},
		},
		{
			name: "command aliases meta",
			spec: "command+k",
			want: Combo{Key: KeyRune, Rune: 'k', Modifiers: ModMeta},
		},
		{
			name: "cmd aliases meta",
			spec: "cmd+k",
			want: Combo{Key: KeyRune, Rune: 'k', Modifiers: ModMeta},
		},
		{
			name: "option aliases alt",
			spec: "option+x",
			want: Combo{Key: KeyRune, Rune: 'x', Modifiers: ModAlt},
		},
		{
			name: "stacked modifiers",
			spec: "Ctrl+Shift+P",
			want: Combo{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl | ModShift},
		},
		{
			name: "special key name",
			spec: "Enter",
			want: Combo{Key: KeyEnter},
		},
		{
			name: "special key case-insensitive",
			spec: "ESCAPE",
			want: Combo{Key: KeyEscape},
		},
		{
			name: "browser arrow alias",
			spec: "ArrowUp",
			want: Combo{Key: KeyUp},
		},
		{
			name: "modified special key",
			spec: "Alt+F4",
			want: Combo{Key: KeyF4, Modifiers: ModAlt},
		},
		{
			name: "modified function key",
			spec: "shift+f10",
			want: Combo{Key: KeyF10, Modifiers: ModShift},
		},
		{
			name: "vim style ctrl",
			spec: "<C-s>",
			want: Combo{Key: KeyRune, Rune: 's', Modifiers: ModCtrl},
		},
		{
			name: "vim style stacked",
			spec: "<C-S-p>",
			want: Combo{Key: KeyRune, Rune: 'p', Modifiers: ModCtrl | ModShift},
		},
		{
			name: "vim style named key",
			spec: "<CR>",
			want: Combo{Key: KeyEnter},
		},
		{
			name: "vim meta notation",
			spec: "<D-s>",
			want: Combo{Key: KeyRune, Rune: 's', Modifiers: ModMeta},
		},
		{
			name: "plus key with modifier",
			spec: "ctrl++",
			want: Combo{Key: KeyRune, Rune: '+', Modifiers: ModCtrl},
		},
		{
			name: "bare plus key",
			spec: "+",
			want: Combo{Key: KeyRune, Rune: '+'},
		},
		{
			name: "space name",
			spec: "space",
			want: Combo{Key: KeySpace},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCombo(tt.spec)
			if err != nil {
				t.Fatalf("ParseCombo(%q) error = %v", tt.spec, err)
			}
			if got.Key != tt.want.Key || got.Rune != tt.want.Rune || got.Modifiers != tt.want.Modifiers {
				t.Errorf("ParseCombo(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseComboErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "whitespace only", spec: "   "},
		{name: "unknown key name", spec: "frobnicate"},
		{name: "unknown modifier", spec: "hyper+s"},
		{name: "unknown vim modifier", spec: "<X-s>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCombo(tt.spec); err == nil {
				t.Errorf("ParseCombo(%q) expected error", tt.spec)
			}
		})
	}

	if _, err := ParseCombo(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("empty spec error = %v, want ErrEmptySpec", err)
	}
	if _, err := ParseCombo("boguskey"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("invalid spec error = %v, want ErrInvalidSpec", err)
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantLen int
	}{
		{name: "single combo", spec: "Ctrl+S", wantLen: 1},
		{name: "two keys", spec: "g g", wantLen: 2},
		{name: "combo sequence", spec: "ctrl+k ctrl+b", wantLen: 2},
		{name: "konami", spec: "up up down down left right left right b a", wantLen: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseSequence(tt.spec)
			if err != nil {
				t.Fatalf("ParseSequence(%q) error = %v", tt.spec, err)
			}
			if len(seq) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(seq), tt.wantLen)
			}
		})
	}

	if _, err := ParseSequence("g bogus g"); err == nil {
		t.Error("expected error for malformed sequence element")
	}
	if _, err := ParseSequence(""); !errors.Is(err, ErrEmptySpec) {
		t.Error("expected ErrEmptySpec for empty sequence")
	}
}

func TestMustParseSequencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSequence should panic on invalid input")
		}
	}()
	MustParseSequence("not-a-key-at-all")
}

func TestComboSameKeys(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "ctrl+s", b: "ctrl+s", want: true},
		{name: "alias equivalence", a: "command+s", b: "meta+s", want: true},
		{name: "case-insensitive runes", a: "a", b: "A", want: true},
		{name: "different modifiers", a: "ctrl+s", b: "alt+s", want: false},
		{name: "different keys", a: "ctrl+s", b: "ctrl+t", want: false},
		{name: "special vs rune", a: "enter", b: "e", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseCombo(tt.a)
			if err != nil {
				t.Fatal(err)
			}
			b, err := ParseCombo(tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if got := a.SameKeys(b); got != tt.want {
				t.Errorf("SameKeys(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
