package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	p := s.AddPage("work")
	g, err := s.AddGroup(p, "backlog")
	require.NoError(t, err)
	_, _, err = s.AddItem(GroupRef{Page: p, Group: g}, "write docs")
	require.NoError(t, err)
	_, _, err = s.AddItem(GroupRef{Page: p, Group: g}, "fix bug")
	require.NoError(t, err)
	return s
}

func TestAddPage(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 0, s.AddPage("groceries"))
	assert.Equal(t, 1, s.AddPage("work"))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "groceries", s.Pages()[0].Title)
}

func TestAddGroupDefaultsVisible(t *testing.T) {
	s := NewStore()
	p := s.AddPage("work")

	g, err := s.AddGroup(p, "backlog")
	require.NoError(t, err)

	group, err := s.Group(GroupRef{Page: p, Group: g})
	require.NoError(t, err)
	assert.True(t, group.ShowItems)
	assert.Equal(t, "backlog", group.Title)
	assert.Empty(t, group.Items)
}

func TestAddItemAssignsIncreasingIDs(t *testing.T) {
	s := setupTestStore(t)

	group, err := s.Group(GroupRef{Page: 0, Group: 0})
	require.NoError(t, err)
	require.Len(t, group.Items, 2)
	assert.Equal(t, 1, group.Items[0].ID)
	assert.Equal(t, 2, group.Items[1].ID)
	assert.Equal(t, StateIdle, group.Items[0].State)
	assert.Empty(t, group.Items[0].Description)
}

func TestIDsNeverReused(t *testing.T) {
	s := setupTestStore(t)
	ref := GroupRef{Page: 0, Group: 0}

	n, err := s.ClearGroupItems(ref)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, id, err := s.AddItem(ref, "again")
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	require.NoError(t, s.RemoveItem(ItemRef{Page: 0, Group: 0, Item: 0}))
	g2, err := s.AddGroup(0, "other")
	require.NoError(t, err)
	_, id, err = s.AddItem(GroupRef{Page: 0, Group: g2}, "new")
	require.NoError(t, err)
	assert.Equal(t, 4, id)

	seen := make(map[int]bool)
	for _, page := range s.Pages() {
		for _, group := range page.Groups {
			for _, item := range group.Items {
				assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
				seen[item.ID] = true
			}
		}
	}
}

func TestStaleReferencesReturnNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.AddGroup(5, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = s.AddItem(GroupRef{Page: 0, Group: 3}, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.RenameItem(ItemRef{Page: 0, Group: 0, Item: 9}, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.RenameGroup(GroupRef{Page: -1, Group: 0}, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ToggleGroupVisibility(GroupRef{Page: 1, Group: 0})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ClearGroupItems(GroupRef{Page: 0, Group: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.RemovePage(2), ErrNotFound)

	// Nothing was touched.
	group, err := s.Group(GroupRef{Page: 0, Group: 0})
	require.NoError(t, err)
	assert.Len(t, group.Items, 2)
	assert.Equal(t, "backlog", group.Title)
}

func TestRename(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.RenameGroup(GroupRef{Page: 0, Group: 0}, "doing"))
	require.NoError(t, s.RenameItem(ItemRef{Page: 0, Group: 0, Item: 1}, "fix the bug"))

	group, _ := s.Group(GroupRef{Page: 0, Group: 0})
	assert.Equal(t, "doing", group.Title)
	assert.Equal(t, "fix the bug", group.Items[1].Title)
	assert.Equal(t, 2, group.Items[1].ID)
}

func TestToggleGroupVisibilityTwice(t *testing.T) {
	s := setupTestStore(t)
	ref := GroupRef{Page: 0, Group: 0}

	shown, err := s.ToggleGroupVisibility(ref)
	require.NoError(t, err)
	assert.False(t, shown)

	group, _ := s.Group(ref)
	assert.Len(t, group.Items, 2, "hiding keeps items")

	shown, err = s.ToggleGroupVisibility(ref)
	require.NoError(t, err)
	assert.True(t, shown)
}

func TestCycleItemState(t *testing.T) {
	s := setupTestStore(t)
	ref := ItemRef{Page: 0, Group: 0, Item: 0}

	want := []ItemState{StateDone, StateFailed, StateLate, StateIdle}
	for _, w := range want {
		got, err := s.CycleItemState(ref)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
}

func TestSetDescription(t *testing.T) {
	s := setupTestStore(t)
	ref := ItemRef{Page: 0, Group: 0, Item: 0}

	require.NoError(t, s.SetDescription(ref, "see **README**"))
	item, err := s.Item(ref)
	require.NoError(t, err)
	assert.Equal(t, "see **README**", item.Description)

	require.NoError(t, s.SetDescription(ref, ""))
	assert.Empty(t, item.Description)
}

func TestRemove(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.AddGroup(0, "later")
	require.NoError(t, err)

	require.NoError(t, s.RemoveItem(ItemRef{Page: 0, Group: 0, Item: 0}))
	group, _ := s.Group(GroupRef{Page: 0, Group: 0})
	require.Len(t, group.Items, 1)
	assert.Equal(t, "fix bug", group.Items[0].Title)

	require.NoError(t, s.RemoveGroup(GroupRef{Page: 0, Group: 0}))
	page, _ := s.Page(0)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "later", page.Groups[0].Title)

	require.NoError(t, s.RemovePage(0))
	assert.Equal(t, 0, s.Len())
}

func TestDuplicateTitles(t *testing.T) {
	s := setupTestStore(t)

	assert.True(t, s.HasPageTitle("work"))
	assert.False(t, s.HasPageTitle("home"))
	assert.True(t, s.HasGroupTitle(0, "backlog"))
	assert.False(t, s.HasGroupTitle(0, "done"))
	assert.False(t, s.HasGroupTitle(4, "backlog"))
}

func TestCountItems(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.CycleItemState(ItemRef{Page: 0, Group: 0, Item: 1})
	require.NoError(t, err)

	total, done := s.CountItems()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, done)
}

func TestItemStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "late", StateLate.String())
}
