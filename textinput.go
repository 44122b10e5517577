package wordarena

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	keyRepeatDelay    = 24 // ticks before a held key repeats
	keyRepeatInterval = 3  // ticks between repeats
)

// TextField is a single-line rune buffer capped at MaxRunes.
type TextField struct {
	runes    []rune
	MaxRunes int
	// Placeholder is shown while the field is empty.
	Placeholder string
}

// NewTextField creates an empty field accepting up to maxRunes runes.
func NewTextField(maxRunes int, placeholder string) *TextField {
	return &TextField{MaxRunes: maxRunes, Placeholder: placeholder}
}

// Value returns the current text.
func (f *TextField) Value() string { return string(f.runes) }

// Len returns the number of runes in the field.
func (f *TextField) Len() int { return len(f.runes) }

// Insert appends printable runes until the field is full and returns how
// many were accepted.
func (f *TextField) Insert(rs []rune) int {
	n := 0
	for _, r := range rs {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if f.MaxRunes > 0 && len(f.runes) >= f.MaxRunes {
			break
		}
		f.runes = append(f.runes, r)
		n++
	}
	return n
}

// Backspace deletes the last rune.
func (f *TextField) Backspace() {
	if len(f.runes) > 0 {
		f.runes = f.runes[:len(f.runes)-1]
	}
}

// Clear empties the field.
func (f *TextField) Clear() {
	f.runes = f.runes[:0]
}

// Submit hands the field's text to add and clears the field only when add
// accepts it. A rejected submit keeps the text so the user can retry.
func (f *TextField) Submit(add func(string) bool) bool {
	if !add(f.Value()) {
		return false
	}
	f.Clear()
	return true
}

// Update reads typed characters and editing keys. It reports whether Enter
// was pressed this tick.
func (f *TextField) Update() (submitted bool) {
	f.Insert(ebiten.AppendInputChars(nil))
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		f.Backspace()
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// repeatingKeyPressed reports a key press on the first tick and then at a
// fixed interval while it is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
