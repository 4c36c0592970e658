package tui

import (
	"github.com/stefanpenner/pagedo/pkg/store"
)

// RowKind tags a flattened row as a group header or an item.
type RowKind int

const (
	RowGroup RowKind = iota
	RowItem
)

// Row is one addressable line of a page's flattened view.
type Row struct {
	Kind  RowKind
	Group int // index into page.Groups
	Item  int // index into the group's Items; only meaningful for RowItem
	Depth int
}

// IsGroup reports whether the row is a group header.
func (r Row) IsGroup() bool {
	return r.Kind == RowGroup
}

// Flatten converts a page into its navigable rows: every group header in order,
// followed immediately by its items when the group shows them.
// A nil page has no rows.
func Flatten(page *store.Page) []Row {
	if page == nil {
		return nil
	}
	var rows []Row
	for g := range page.Groups {
		group := &page.Groups[g]
		rows = append(rows, Row{Kind: RowGroup, Group: g})
		if !group.ShowItems {
			continue
		}
		for i := range group.Items {
			rows = append(rows, Row{Kind: RowItem, Group: g, Item: i, Depth: 1})
		}
	}
	return rows
}

// rowTitle returns the display title for a row, or "" if it no longer resolves.
func rowTitle(page *store.Page, row Row) string {
	if page == nil || row.Group < 0 || row.Group >= len(page.Groups) {
		return ""
	}
	group := &page.Groups[row.Group]
	if row.IsGroup() {
		return group.Title
	}
	if row.Item < 0 || row.Item >= len(group.Items) {
		return ""
	}
	return group.Items[row.Item].Title
}
