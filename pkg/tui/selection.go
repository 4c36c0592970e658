package tui

const noSelection = -1

// Selection tracks the selected page and a flat cursor into that page's rows.
// The selected group and item are never stored; they are derived from the row
// under the cursor each time they are asked for.
type Selection struct {
	page   int
	cursor int
}

// NewSelection returns a Selection with nothing selected.
func NewSelection() Selection {
	return Selection{page: noSelection, cursor: noSelection}
}

// Page returns the selected page index.
func (s Selection) Page() (int, bool) {
	return s.page, s.page != noSelection
}

// Cursor returns the flat cursor index.
func (s Selection) Cursor() (int, bool) {
	return s.cursor, s.cursor != noSelection
}

// SelectPage selects page p. Switching pages resets the flat cursor.
func (s *Selection) SelectPage(p int) {
	if p != s.page {
		s.cursor = noSelection
	}
	s.page = p
}

// PageUp moves the page cursor up over n pages, wrapping from the first to the last.
func (s *Selection) PageUp(n int) {
	if n == 0 {
		return
	}
	s.SelectPage(wrapUp(s.page, n))
}

// PageDown moves the page cursor down over n pages, wrapping from the last to the first.
func (s *Selection) PageDown(n int) {
	if n == 0 {
		return
	}
	s.SelectPage(wrapDown(s.page, n))
}

// SyncPages reclamps the page cursor after the page list changed to n pages.
func (s *Selection) SyncPages(n int) {
	switch {
	case n == 0:
		s.page = noSelection
		s.cursor = noSelection
	case s.page >= n:
		s.SelectPage(n - 1)
	}
}

// Up moves the flat cursor up, wrapping from the first row to the last.
func (s *Selection) Up(rows []Row) {
	if len(rows) == 0 {
		return
	}
	s.cursor = wrapUp(s.cursor, len(rows))
}

// Down moves the flat cursor down, wrapping from the last row to the first.
func (s *Selection) Down(rows []Row) {
	if len(rows) == 0 {
		return
	}
	s.cursor = wrapDown(s.cursor, len(rows))
}

// Sync reclamps the flat cursor into rows after a structural change.
// An empty view clears it; an unset cursor on a non-empty view lands on the first row.
func (s *Selection) Sync(rows []Row) {
	switch {
	case len(rows) == 0:
		s.cursor = noSelection
	case s.cursor == noSelection:
		s.cursor = 0
	case s.cursor >= len(rows):
		s.cursor = len(rows) - 1
	}
}

// MoveTo puts the flat cursor on row i. Out of range indices are ignored.
func (s *Selection) MoveTo(i int, rows []Row) {
	if i >= 0 && i < len(rows) {
		s.cursor = i
	}
}

// ResetCursor unsets the flat cursor.
func (s *Selection) ResetCursor() {
	s.cursor = noSelection
}

// Row returns the row under the cursor.
func (s Selection) Row(rows []Row) (Row, bool) {
	if s.cursor < 0 || s.cursor >= len(rows) {
		return Row{}, false
	}
	return rows[s.cursor], true
}

// Group returns the group index derived from the row under the cursor.
func (s Selection) Group(rows []Row) (int, bool) {
	row, ok := s.Row(rows)
	if !ok {
		return 0, false
	}
	return row.Group, true
}

// Item returns the group and item indices when the cursor is on an item row.
func (s Selection) Item(rows []Row) (group, item int, ok bool) {
	row, ok := s.Row(rows)
	if !ok || row.IsGroup() {
		return 0, 0, false
	}
	return row.Group, row.Item, true
}

// wrapUp and wrapDown start an unset cursor at 0.
func wrapUp(cur, n int) int {
	switch {
	case cur == noSelection:
		return 0
	case cur <= 0 || cur >= n:
		return n - 1
	}
	return cur - 1
}

func wrapDown(cur, n int) int {
	if cur < 0 || cur >= n-1 {
		return 0
	}
	return cur + 1
}
