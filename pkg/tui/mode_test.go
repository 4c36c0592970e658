package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextEntryCarriesKind(t *testing.T) {
	m := TextEntry(EntryNewGroup)
	assert.Equal(t, ModeTextEntry, m.Kind())

	kind, ok := m.Entry()
	assert.True(t, ok)
	assert.Equal(t, EntryNewGroup, kind)

	assert.Equal(t, PageSelect(), TextEntry(EntryNone))

	_, ok = Browsing().Entry()
	assert.False(t, ok)
}

func TestAlertDismissal(t *testing.T) {
	tests := []struct {
		origin EntryKind
		want   Mode
	}{
		{EntryNone, PageSelect()},
		{EntryNewPage, PageSelect()},
		{EntryNewGroup, Browsing()},
		{EntryNewTodo, Browsing()},
		{EntryRenameGroup, Browsing()},
		{EntryRenameItem, Browsing()},
		{EntryDescription, Browsing()},
	}
	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			for _, kind := range []AlertKind{AlertError, AlertWarning, AlertMessage} {
				assert.Equal(t, tt.want, Alert(kind, tt.origin).Dismissed())
			}
		})
	}
}

func TestDismissedOnNonAlertIsIdentity(t *testing.T) {
	assert.Equal(t, Browsing(), Browsing().Dismissed())
	assert.Equal(t, TextEntry(EntryNewTodo), TextEntry(EntryNewTodo).Dismissed())
}

func TestAlertKind(t *testing.T) {
	kind, ok := Alert(AlertWarning, EntryNone).AlertKind()
	assert.True(t, ok)
	assert.Equal(t, AlertWarning, kind)
	assert.Equal(t, "Warning!", kind.Title())
	assert.Equal(t, "Error!", AlertError.Title())
	assert.Equal(t, "Message...", AlertMessage.Title())

	_, ok = PageSelect().AlertKind()
	assert.False(t, ok)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "text-entry(new-todo)", TextEntry(EntryNewTodo).String())
	assert.Equal(t, "alert(error)", Alert(AlertError, EntryNone).String())
	assert.Equal(t, "browsing", Browsing().String())
}
