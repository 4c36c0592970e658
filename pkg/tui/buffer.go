package tui

import "strings"

// EditBuffer is the single text buffer shared by every TextEntry mode.
type EditBuffer struct {
	runes []rune
}

// Insert appends runes at the end of the buffer.
func (b *EditBuffer) Insert(r ...rune) {
	b.runes = append(b.runes, r...)
}

// Backspace removes the last rune. It does nothing on an empty buffer.
func (b *EditBuffer) Backspace() {
	if len(b.runes) > 0 {
		b.runes = b.runes[:len(b.runes)-1]
	}
}

// Set replaces the buffer contents.
func (b *EditBuffer) Set(s string) {
	b.runes = []rune(s)
}

// Clear empties the buffer.
func (b *EditBuffer) Clear() {
	b.runes = nil
}

// String returns the raw contents.
func (b EditBuffer) String() string {
	return string(b.runes)
}

// Trimmed returns the contents without surrounding whitespace.
func (b EditBuffer) Trimmed() string {
	return strings.TrimSpace(string(b.runes))
}

// Empty reports whether the buffer has no runes at all.
func (b EditBuffer) Empty() bool {
	return len(b.runes) == 0
}
