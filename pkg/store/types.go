package store

// ItemState represents the completion state of an item.
type ItemState int

const (
	StateIdle ItemState = iota
	StateDone
	StateFailed
	StateLate
)

// String returns the display name of the state.
func (s ItemState) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	case StateLate:
		return "late"
	default:
		return "idle"
	}
}

// Next returns the state that follows s in the cycle idle → done → failed → late → idle.
func (s ItemState) Next() ItemState {
	switch s {
	case StateIdle:
		return StateDone
	case StateDone:
		return StateFailed
	case StateFailed:
		return StateLate
	default:
		return StateIdle
	}
}

// Item is a single todo owned by a Group.
type Item struct {
	ID          int
	Title       string
	Description string
	State       ItemState
}

// IsDone returns true if the item is marked done.
func (i *Item) IsDone() bool {
	return i.State == StateDone
}

// Group is a collapsible, named list of items owned by a Page.
type Group struct {
	Title     string
	Items     []Item
	ShowItems bool // items are only navigable while true
}

// DoneCount returns how many of the group's items are done.
func (g *Group) DoneCount() int {
	n := 0
	for i := range g.Items {
		if g.Items[i].IsDone() {
			n++
		}
	}
	return n
}

// Page is a top-level container of groups.
type Page struct {
	Title  string
	Groups []Group
}

// GroupRef addresses a group by its page and group indices.
type GroupRef struct {
	Page  int
	Group int
}

// ItemRef addresses an item by page, group and item indices.
type ItemRef struct {
	Page  int
	Group int
	Item  int
}

// GroupRef returns the reference to the item's owning group.
func (r ItemRef) GroupRef() GroupRef {
	return GroupRef{Page: r.Page, Group: r.Group}
}
