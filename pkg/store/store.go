package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a reference no longer resolves to a page, group or item.
var ErrNotFound = errors.New("not found")

// Store owns the in-memory page hierarchy.
// Pages own their groups and groups own their items; callers address children by index
// and never hold pointers across a mutation.
type Store struct {
	pages  []Page
	nextID int
}

// NewStore creates an empty Store. Item ids start at 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Pages returns the page list. Callers must treat it as read-only.
func (s *Store) Pages() []Page {
	return s.pages
}

// Len returns the number of pages.
func (s *Store) Len() int {
	return len(s.pages)
}

// Page returns the page at index p.
func (s *Store) Page(p int) (*Page, error) {
	if p < 0 || p >= len(s.pages) {
		return nil, fmt.Errorf("page %d: %w", p, ErrNotFound)
	}
	return &s.pages[p], nil
}

// Group resolves a group reference.
func (s *Store) Group(ref GroupRef) (*Group, error) {
	page, err := s.Page(ref.Page)
	if err != nil {
		return nil, err
	}
	if ref.Group < 0 || ref.Group >= len(page.Groups) {
		return nil, fmt.Errorf("group %d on page %d: %w", ref.Group, ref.Page, ErrNotFound)
	}
	return &page.Groups[ref.Group], nil
}

// Item resolves an item reference.
func (s *Store) Item(ref ItemRef) (*Item, error) {
	group, err := s.Group(ref.GroupRef())
	if err != nil {
		return nil, err
	}
	if ref.Item < 0 || ref.Item >= len(group.Items) {
		return nil, fmt.Errorf("item %d in group %d on page %d: %w", ref.Item, ref.Group, ref.Page, ErrNotFound)
	}
	return &group.Items[ref.Item], nil
}

// AddPage appends a page and returns its index.
func (s *Store) AddPage(title string) int {
	s.pages = append(s.pages, Page{Title: title})
	return len(s.pages) - 1
}

// AddGroup appends a visible group to page p and returns its index.
func (s *Store) AddGroup(p int, title string) (int, error) {
	page, err := s.Page(p)
	if err != nil {
		return 0, err
	}
	page.Groups = append(page.Groups, Group{Title: title, ShowItems: true})
	return len(page.Groups) - 1, nil
}

// AddItem appends an idle item to the group and returns its reference and id.
func (s *Store) AddItem(ref GroupRef, title string) (ItemRef, int, error) {
	group, err := s.Group(ref)
	if err != nil {
		return ItemRef{}, 0, err
	}
	id := s.nextID
	s.nextID++
	group.Items = append(group.Items, Item{ID: id, Title: title, State: StateIdle})
	return ItemRef{Page: ref.Page, Group: ref.Group, Item: len(group.Items) - 1}, id, nil
}

// RenameGroup sets a group's title.
func (s *Store) RenameGroup(ref GroupRef, title string) error {
	group, err := s.Group(ref)
	if err != nil {
		return err
	}
	group.Title = title
	return nil
}

// RenameItem sets an item's title.
func (s *Store) RenameItem(ref ItemRef, title string) error {
	item, err := s.Item(ref)
	if err != nil {
		return err
	}
	item.Title = title
	return nil
}

// SetDescription sets an item's description. An empty description is allowed.
func (s *Store) SetDescription(ref ItemRef, description string) error {
	item, err := s.Item(ref)
	if err != nil {
		return err
	}
	item.Description = description
	return nil
}

// CycleItemState advances an item to its next state and returns it.
func (s *Store) CycleItemState(ref ItemRef) (ItemState, error) {
	item, err := s.Item(ref)
	if err != nil {
		return StateIdle, err
	}
	item.State = item.State.Next()
	return item.State, nil
}

// ToggleGroupVisibility flips ShowItems and returns the new value.
// Hidden items are kept, only excluded from navigation.
func (s *Store) ToggleGroupVisibility(ref GroupRef) (bool, error) {
	group, err := s.Group(ref)
	if err != nil {
		return false, err
	}
	group.ShowItems = !group.ShowItems
	return group.ShowItems, nil
}

// ClearGroupItems destroys every item in the group and returns how many were removed.
// Their ids are never handed out again.
func (s *Store) ClearGroupItems(ref GroupRef) (int, error) {
	group, err := s.Group(ref)
	if err != nil {
		return 0, err
	}
	n := len(group.Items)
	group.Items = nil
	return n, nil
}

// RemovePage deletes page p with all of its groups and items.
func (s *Store) RemovePage(p int) error {
	if _, err := s.Page(p); err != nil {
		return err
	}
	s.pages = append(s.pages[:p], s.pages[p+1:]...)
	return nil
}

// RemoveGroup deletes a group with all of its items.
func (s *Store) RemoveGroup(ref GroupRef) error {
	if _, err := s.Group(ref); err != nil {
		return err
	}
	page := &s.pages[ref.Page]
	page.Groups = append(page.Groups[:ref.Group], page.Groups[ref.Group+1:]...)
	return nil
}

// RemoveItem deletes a single item.
func (s *Store) RemoveItem(ref ItemRef) error {
	if _, err := s.Item(ref); err != nil {
		return err
	}
	group := &s.pages[ref.Page].Groups[ref.Group]
	group.Items = append(group.Items[:ref.Item], group.Items[ref.Item+1:]...)
	return nil
}

// HasPageTitle reports whether any page is titled title.
func (s *Store) HasPageTitle(title string) bool {
	for i := range s.pages {
		if s.pages[i].Title == title {
			return true
		}
	}
	return false
}

// HasGroupTitle reports whether page p already has a group titled title.
func (s *Store) HasGroupTitle(p int, title string) bool {
	page, err := s.Page(p)
	if err != nil {
		return false
	}
	for i := range page.Groups {
		if page.Groups[i].Title == title {
			return true
		}
	}
	return false
}

// CountItems returns the total number of items across all pages.
func (s *Store) CountItems() (total, done int) {
	for p := range s.pages {
		for g := range s.pages[p].Groups {
			group := &s.pages[p].Groups[g]
			total += len(group.Items)
			done += group.DoneCount()
		}
	}
	return total, done
}
