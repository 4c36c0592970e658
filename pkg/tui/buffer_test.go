package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditBuffer(t *testing.T) {
	var b EditBuffer
	assert.True(t, b.Empty())

	b.Backspace()
	assert.True(t, b.Empty(), "backspace on empty buffer is a no-op")

	b.Insert([]rune("  héllo ")...)
	assert.Equal(t, "  héllo ", b.String())
	assert.Equal(t, "héllo", b.Trimmed())

	b.Backspace()
	b.Backspace()
	assert.Equal(t, "  héll", b.String())

	b.Set("é")
	b.Backspace()
	assert.True(t, b.Empty(), "backspace removes whole runes")

	b.Set("new")
	assert.Equal(t, "new", b.String())

	b.Clear()
	assert.True(t, b.Empty())
	assert.Equal(t, "", b.String())
}
