package wordarena

import (
	"strings"
	"unicode/utf8"
)

// WordID identifies one word instance for its whole lifetime. IDs are never
// reused within a Registry, so duplicate texts stay distinguishable.
type WordID uint64

// Word is one registry entry.
type Word struct {
	ID   WordID
	Text string
}

// Registry is the ordered, bounded list of active words. It is the source of
// truth for which bubbles exist.
type Registry struct {
	words    []Word
	nextID   WordID
	max      int
	maxRunes int
}

// NewRegistry creates an empty registry holding at most max words of at most
// maxRunes runes each.
func NewRegistry(max, maxRunes int) *Registry {
	return &Registry{
		words:    make([]Word, 0, max),
		max:      max,
		maxRunes: maxRunes,
	}
}

// NormalizeWord trims surrounding space and truncates text to maxRunes runes.
func NormalizeWord(text string, maxRunes int) string {
	text = strings.TrimSpace(text)
	if maxRunes > 0 && utf8.RuneCountInString(text) > maxRunes {
		text = strings.TrimSpace(string([]rune(text)[:maxRunes]))
	}
	return text
}

// Add appends text after normalization. It reports false and leaves the
// registry unchanged when the text is empty or the registry is full.
func (r *Registry) Add(text string) (Word, bool) {
	text = NormalizeWord(text, r.maxRunes)
	if text == "" || r.Full() {
		return Word{}, false
	}
	r.nextID++
	w := Word{ID: r.nextID, Text: text}
	r.words = append(r.words, w)
	return w, true
}

// Remove deletes the instance with the given ID.
func (r *Registry) Remove(id WordID) (Word, bool) {
	for i, w := range r.words {
		if w.ID == id {
			r.words = append(r.words[:i], r.words[i+1:]...)
			return w, true
		}
	}
	return Word{}, false
}

// RemoveText deletes every instance whose text equals text and returns them
// in registry order.
func (r *Registry) RemoveText(text string) []Word {
	var removed []Word
	kept := r.words[:0]
	for _, w := range r.words {
		if w.Text == text {
			removed = append(removed, w)
			continue
		}
		kept = append(kept, w)
	}
	// Clear the tail so removed strings are not retained.
	for i := len(kept); i < len(r.words); i++ {
		r.words[i] = Word{}
	}
	r.words = kept
	return removed
}

// Get returns the instance with the given ID.
func (r *Registry) Get(id WordID) (Word, bool) {
	for _, w := range r.words {
		if w.ID == id {
			return w, true
		}
	}
	return Word{}, false
}

// Words returns a copy of the entries in insertion order.
func (r *Registry) Words() []Word {
	out := make([]Word, len(r.words))
	copy(out, r.words)
	return out
}

// Texts returns the entry texts in insertion order.
func (r *Registry) Texts() []string {
	out := make([]string, len(r.words))
	for i, w := range r.words {
		out[i] = w.Text
	}
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.words) }

// Cap returns the maximum number of entries.
func (r *Registry) Cap() int { return r.max }

// Full reports whether another Add would be rejected for capacity.
func (r *Registry) Full() bool { return len(r.words) >= r.max }
