package tui

// ModeKind identifies which input handler is active.
type ModeKind int

const (
	ModePageSelect ModeKind = iota
	ModeBrowsing
	ModeTextEntry
	ModeChooseAddTarget
	ModeAlert
)

func (k ModeKind) String() string {
	switch k {
	case ModePageSelect:
		return "page-select"
	case ModeBrowsing:
		return "browsing"
	case ModeTextEntry:
		return "text-entry"
	case ModeChooseAddTarget:
		return "choose-add-target"
	case ModeAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// EntryKind is what a TextEntry mode is collecting text for.
type EntryKind int

const (
	EntryNone EntryKind = iota
	EntryNewPage
	EntryNewGroup
	EntryNewTodo
	EntryRenameGroup
	EntryRenameItem
	EntryDescription
)

func (k EntryKind) String() string {
	switch k {
	case EntryNewPage:
		return "new-page"
	case EntryNewGroup:
		return "new-group"
	case EntryNewTodo:
		return "new-todo"
	case EntryRenameGroup:
		return "rename-group"
	case EntryRenameItem:
		return "rename-item"
	case EntryDescription:
		return "description"
	default:
		return "none"
	}
}

// Prompt is the title of the input box for the entry kind.
func (k EntryKind) Prompt() string {
	switch k {
	case EntryNewPage:
		return "Create new Page:"
	case EntryNewGroup:
		return "Create new Group:"
	case EntryNewTodo:
		return "Create new Todo:"
	case EntryRenameGroup:
		return "Rename Group:"
	case EntryRenameItem:
		return "Rename Todo:"
	case EntryDescription:
		return "Todo description:"
	default:
		return ""
	}
}

// returnMode is where cancel and commit lead: page entries go back to the page
// list, everything else back to the page being browsed.
func (k EntryKind) returnMode() Mode {
	if k == EntryNewPage || k == EntryNone {
		return PageSelect()
	}
	return Browsing()
}

// AlertKind is the severity of an alert.
type AlertKind int

const (
	AlertError AlertKind = iota
	AlertWarning
	AlertMessage
)

// Title is the alert box heading.
func (k AlertKind) Title() string {
	switch k {
	case AlertError:
		return "Error!"
	case AlertWarning:
		return "Warning!"
	default:
		return "Message..."
	}
}

func (k AlertKind) String() string {
	switch k {
	case AlertError:
		return "error"
	case AlertWarning:
		return "warning"
	default:
		return "message"
	}
}

// Mode is the active interaction mode. Its fields are unexported so that a
// TextEntry always carries an entry kind and an Alert always carries a severity;
// build values with the constructors below.
type Mode struct {
	kind  ModeKind
	entry EntryKind // TextEntry: what is being entered. Alert: the entry active when it fired.
	alert AlertKind
}

// PageSelect is the page picker.
func PageSelect() Mode { return Mode{kind: ModePageSelect} }

// Browsing navigates the rows of the selected page.
func Browsing() Mode { return Mode{kind: ModeBrowsing} }

// ChooseAddTarget asks whether to add an item or a group.
func ChooseAddTarget() Mode { return Mode{kind: ModeChooseAddTarget} }

// TextEntry collects text for kind. EntryNone is not a valid kind and yields PageSelect.
func TextEntry(kind EntryKind) Mode {
	if kind == EntryNone {
		return PageSelect()
	}
	return Mode{kind: ModeTextEntry, entry: kind}
}

// Alert shows a popup of the given severity. origin is the entry kind that was
// active when the alert fired, EntryNone if there was none.
func Alert(kind AlertKind, origin EntryKind) Mode {
	return Mode{kind: ModeAlert, alert: kind, entry: origin}
}

// Kind returns which variant the mode is.
func (m Mode) Kind() ModeKind { return m.kind }

// Entry returns the entry kind while in TextEntry.
func (m Mode) Entry() (EntryKind, bool) {
	if m.kind != ModeTextEntry {
		return EntryNone, false
	}
	return m.entry, true
}

// AlertKind returns the alert severity while in Alert.
func (m Mode) AlertKind() (AlertKind, bool) {
	if m.kind != ModeAlert {
		return 0, false
	}
	return m.alert, true
}

// Dismissed returns the mode an alert returns to: the page list if no entry or a
// new page entry was active when it fired, otherwise the page being browsed.
// Non-alert modes are returned unchanged.
func (m Mode) Dismissed() Mode {
	if m.kind != ModeAlert {
		return m
	}
	return m.entry.returnMode()
}

func (m Mode) String() string {
	switch m.kind {
	case ModeTextEntry:
		return m.kind.String() + "(" + m.entry.String() + ")"
	case ModeAlert:
		return m.kind.String() + "(" + m.alert.String() + ")"
	default:
		return m.kind.String()
	}
}
