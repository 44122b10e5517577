package wordarena

import "testing"

func TestTextFieldInsert(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		input string
		want  string
		n     int
	}{
		{"plain", 12, "cat", "cat", 3},
		{"capped", 4, "elephant", "elep", 4},
		{"control runes dropped", 12, "a\tb\x7fc\n", "abc", 3},
		{"multibyte counts runes", 3, "ねこです", "ねこで", 3},
		{"no cap", 0, "unbounded", "unbounded", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextField(tt.max, "")
			if n := f.Insert([]rune(tt.input)); n != tt.n {
				t.Errorf("Insert = %d, want %d", n, tt.n)
			}
			if f.Value() != tt.want {
				t.Errorf("Value = %q, want %q", f.Value(), tt.want)
			}
		})
	}
}

func TestTextFieldBackspace(t *testing.T) {
	f := NewTextField(12, "")
	f.Insert([]rune("ねこ"))
	f.Backspace()
	if f.Value() != "ね" {
		t.Errorf("Value = %q, want ね", f.Value())
	}
	f.Backspace()
	f.Backspace()
	if f.Len() != 0 {
		t.Errorf("Len = %d, want 0", f.Len())
	}
}

func TestTextFieldSubmit(t *testing.T) {
	f := NewTextField(12, "type")
	f.Insert([]rune("cat"))

	if f.Submit(func(string) bool { return false }) {
		t.Error("rejected submit reported success")
	}
	if f.Value() != "cat" {
		t.Errorf("rejected submit cleared the field: %q", f.Value())
	}

	var got string
	if !f.Submit(func(s string) bool { got = s; return true }) {
		t.Error("accepted submit reported failure")
	}
	if got != "cat" || f.Value() != "" {
		t.Errorf("submitted %q, field now %q", got, f.Value())
	}
}

func TestTextFieldSubmitToArena(t *testing.T) {
	a, _ := newTestArena(t, func(c *Config) { c.MaxWords = 1 })
	f := NewTextField(a.Config().MaxWordRunes, "")
	add := func(s string) bool {
		_, ok := a.Add(s)
		return ok
	}

	f.Insert([]rune("cat"))
	if !f.Submit(add) {
		t.Fatal("first word rejected")
	}
	f.Insert([]rune("dog"))
	if f.Submit(add) {
		t.Error("full arena accepted a word")
	}
	if f.Value() != "dog" {
		t.Errorf("Value = %q, want dog", f.Value())
	}
}
