package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	charmLog "github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/stefanpenner/pagedo/pkg/config"
	"github.com/stefanpenner/pagedo/pkg/store"
)

// Messages shown in alerts.
const (
	msgNoGroupSelected = "Please select a group before adding a todo item."
	msgPageGone        = "Page no longer exists."
	msgEntryGone       = "The selected entry no longer exists."
	msgTitleUnchanged  = "Title unchanged."
)

// ConfigReloadedMsg is sent when the config watcher reloads the config file.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// statusMsg is returned by commands that report back to the footer.
type statusMsg struct {
	text string
	err  error
}

type tickMsg time.Time

// Options configures a Model. Zero fields get defaults.
type Options struct {
	Config *config.Config
	Logger *charmLog.Logger
	// Clipboard writes text to the system clipboard.
	Clipboard func(text string) error
	// Notify sends a desktop notification.
	Notify func(title, message string) error
}

// Model is the Bubble Tea model for the page/group/item TUI.
type Model struct {
	store  *store.Store
	cfg    *config.Config
	keys   KeyMap
	logger *charmLog.Logger
	width  int
	height int

	mode       Mode
	sel        Selection
	buffer     EditBuffer
	input      textinput.Model
	alertMsg   string
	shouldQuit bool

	// Status message
	statusMsg     string
	statusTimeout time.Time

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int

	copyText func(string) error
	notify   func(title, message string) error
}

// NewModel creates a new TUI model over s, starting on the page list.
func NewModel(s *store.Store, opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = charmLog.New(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Notify == nil {
		opts.Notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	return Model{
		store:    s,
		cfg:      opts.Config,
		keys:     NewKeyMap(opts.Config.Keys),
		logger:   opts.Logger,
		mode:     PageSelect(),
		sel:      NewSelection(),
		input:    ti,
		copyText: opts.Clipboard,
		notify:   opts.Notify,
	}
}

// Mode returns the active mode.
func (m Model) Mode() Mode { return m.mode }

// Selection returns the current selection.
func (m Model) Selection() Selection { return m.sel }

// Store returns the hierarchy the model edits.
func (m Model) Store() *store.Store { return m.store }

// ShouldQuit reports whether the quit flag has been set.
func (m Model) ShouldQuit() bool { return m.shouldQuit }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), m.tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.shouldQuit {
		return m, tea.Quit
	}

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.getGlamourRenderer(m.detailWidth())
		return m, tea.ClearScreen

	case tickMsg:
		if m.statusMsg != "" && time.Now().After(m.statusTimeout) {
			m.statusMsg = ""
		}
		return m, m.tick()

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.logger.Warn("config reload failed", "err", msg.Err)
			m.setStatus("Config reload failed: " + msg.Err.Error())
			return m, nil
		}
		m.applyConfig(msg.Config)
		m.setStatus("Config reloaded")
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.logger.Warn(msg.text, "err", msg.err)
		}
		m.setStatus(msg.text)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes a key to the handler of the active mode, then reclamps the
// selection against the mutated hierarchy.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.shouldQuit = true
		return m, tea.Quit
	}

	before := m.mode
	var cmd tea.Cmd
	switch m.mode.Kind() {
	case ModePageSelect:
		cmd = m.handlePageSelect(msg)
	case ModeBrowsing:
		cmd = m.handleBrowsing(msg)
	case ModeChooseAddTarget:
		cmd = m.handleChooseAddTarget(msg)
	case ModeTextEntry:
		cmd = m.handleTextEntry(msg)
	case ModeAlert:
		m.handleAlert()
	}
	m.resync()

	if m.mode != before {
		m.logger.Debug("mode changed", "from", before, "to", m.mode)
	}
	if m.shouldQuit {
		m.logger.Info("quit requested")
		return m, tea.Quit
	}
	return m, cmd
}

func (m *Model) handlePageSelect(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.shouldQuit = true

	case key.Matches(msg, m.keys.Up):
		m.sel.PageUp(m.store.Len())

	case key.Matches(msg, m.keys.Down):
		m.sel.PageDown(m.store.Len())

	case key.Matches(msg, m.keys.Confirm):
		if p, ok := m.sel.Page(); ok && p < m.store.Len() {
			m.mode = Browsing()
		}

	case key.Matches(msg, m.keys.Add):
		m.beginEntry(EntryNewPage, "")

	case key.Matches(msg, m.keys.Delete):
		p, ok := m.sel.Page()
		if !ok {
			break
		}
		page, err := m.store.Page(p)
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		title := page.Title
		if err := m.store.RemovePage(p); err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.sel.SyncPages(m.store.Len())
		m.sel.ResetCursor()
		m.logger.Info("page removed", "title", title)
		m.setStatus("Deleted page: " + title)
	}
	return nil
}

func (m *Model) handleBrowsing(msg tea.KeyMsg) tea.Cmd {
	p, ok := m.sel.Page()
	if !ok || p >= m.store.Len() {
		return m.raiseAlert(AlertError, EntryNone, msgPageGone)
	}
	rows := m.rows()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = PageSelect()

	case key.Matches(msg, m.keys.Up):
		m.sel.Up(rows)

	case key.Matches(msg, m.keys.Down):
		m.sel.Down(rows)

	case key.Matches(msg, m.keys.Add):
		m.mode = ChooseAddTarget()

	case key.Matches(msg, m.keys.Toggle):
		g, ok := m.sel.Group(rows)
		if !ok {
			break
		}
		ref := store.GroupRef{Page: p, Group: g}
		shown, err := m.store.ToggleGroupVisibility(ref)
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.focusGroup(g)
		m.logger.Debug("group visibility toggled", "page", p, "group", g, "show_items", shown)

	case key.Matches(msg, m.keys.CycleState):
		g, i, ok := m.sel.Item(rows)
		if !ok {
			break
		}
		ref := store.ItemRef{Page: p, Group: g, Item: i}
		item, err := m.store.Item(ref)
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		state, err := m.store.CycleItemState(ref)
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.setStatus(item.Title + " → " + state.String())

	case key.Matches(msg, m.keys.Rename):
		row, ok := m.sel.Row(rows)
		if !ok {
			break
		}
		if row.IsGroup() {
			m.beginEntry(EntryRenameGroup, rowTitle(m.currentPage(), row))
		} else {
			m.beginEntry(EntryRenameItem, rowTitle(m.currentPage(), row))
		}

	case key.Matches(msg, m.keys.Describe):
		g, i, ok := m.sel.Item(rows)
		if !ok {
			break
		}
		item, err := m.store.Item(store.ItemRef{Page: p, Group: g, Item: i})
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.beginEntry(EntryDescription, item.Description)

	case key.Matches(msg, m.keys.Clear):
		g, ok := m.sel.Group(rows)
		if !ok {
			break
		}
		n, err := m.store.ClearGroupItems(store.GroupRef{Page: p, Group: g})
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.focusGroup(g)
		m.logger.Info("group cleared", "page", p, "group", g, "removed", n)
		m.setStatus(fmt.Sprintf("Cleared %d items", n))

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.sel.Row(rows)
		if !ok {
			break
		}
		title := rowTitle(m.currentPage(), row)
		var err error
		if row.IsGroup() {
			err = m.store.RemoveGroup(store.GroupRef{Page: p, Group: row.Group})
		} else {
			err = m.store.RemoveItem(store.ItemRef{Page: p, Group: row.Group, Item: row.Item})
		}
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.logger.Info("row removed", "page", p, "group", row.Group, "title", title)
		m.setStatus("Deleted: " + title)

	case key.Matches(msg, m.keys.Copy):
		row, ok := m.sel.Row(rows)
		if !ok {
			break
		}
		return m.copyCmd(rowTitle(m.currentPage(), row))
	}
	return nil
}

func (m *Model) handleChooseAddTarget(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.AddItem):
		if _, ok := m.sel.Group(m.rows()); !ok {
			m.buffer.Clear()
			// NewTodo origin so dismissal returns to the page, not the page list.
			return m.raiseAlert(AlertError, EntryNewTodo, msgNoGroupSelected)
		}
		m.beginEntry(EntryNewTodo, "")
	case key.Matches(msg, m.keys.AddGroup):
		m.beginEntry(EntryNewGroup, "")
	case key.Matches(msg, m.keys.Back):
		m.mode = Browsing()
	}
	return nil
}

func (m *Model) handleTextEntry(msg tea.KeyMsg) tea.Cmd {
	kind, ok := m.mode.Entry()
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	switch {
	case msg.Type == tea.KeyRunes:
		m.buffer.Insert(msg.Runes...)

	case msg.Type == tea.KeySpace:
		m.buffer.Insert(' ')

	case key.Matches(msg, m.keys.Backspace):
		m.buffer.Backspace()

	case key.Matches(msg, m.keys.Back):
		m.buffer.Clear()
		m.mode = kind.returnMode()
		m.logger.Debug("entry cancelled", "kind", kind)

	case key.Matches(msg, m.keys.Confirm):
		cmd = m.commit(kind)
	}
	m.syncInput()
	return cmd
}

func (m *Model) handleAlert() {
	m.mode = m.mode.Dismissed()
	m.alertMsg = ""
}

// commit applies the edit buffer for kind. An empty title leaves the entry open.
func (m *Model) commit(kind EntryKind) tea.Cmd {
	text := m.buffer.Trimmed()
	if text == "" && kind != EntryDescription {
		return nil
	}
	m.buffer.Clear()
	m.mode = kind.returnMode()

	if kind == EntryNewPage {
		dup := m.store.HasPageTitle(text)
		p := m.store.AddPage(text)
		m.sel.SelectPage(p)
		m.logger.Info("page added", "title", text, "index", p)
		if dup {
			return m.raiseAlert(AlertWarning, kind, fmt.Sprintf("A page named %q already exists.", text))
		}
		return nil
	}

	p, ok := m.sel.Page()
	if !ok {
		return m.raiseAlert(AlertError, EntryNone, msgPageGone)
	}
	rows := m.rows()

	switch kind {
	case EntryNewGroup:
		dup := m.store.HasGroupTitle(p, text)
		g, err := m.store.AddGroup(p, text)
		if err != nil {
			return m.lookupFailed(EntryNone, err)
		}
		m.focusGroup(g)
		m.logger.Info("group added", "page", p, "title", text)
		if dup {
			return m.raiseAlert(AlertWarning, kind, fmt.Sprintf("A group named %q already exists on this page.", text))
		}

	case EntryNewTodo:
		g, ok := m.sel.Group(rows)
		if !ok {
			return m.raiseAlert(AlertError, kind, msgNoGroupSelected)
		}
		_, id, err := m.store.AddItem(store.GroupRef{Page: p, Group: g}, text)
		if err != nil {
			return m.lookupFailed(kind, err)
		}
		m.logger.Info("todo added", "page", p, "group", g, "id", id, "title", text)

	case EntryRenameGroup:
		g, ok := m.sel.Group(rows)
		if !ok {
			return m.raiseAlert(AlertError, kind, msgEntryGone)
		}
		ref := store.GroupRef{Page: p, Group: g}
		group, err := m.store.Group(ref)
		if err != nil {
			return m.lookupFailed(kind, err)
		}
		if group.Title == text {
			return m.raiseAlert(AlertMessage, kind, msgTitleUnchanged)
		}
		if err := m.store.RenameGroup(ref, text); err != nil {
			return m.lookupFailed(kind, err)
		}
		m.setStatus("Renamed to: " + text)

	case EntryRenameItem, EntryDescription:
		g, i, ok := m.sel.Item(rows)
		if !ok {
			return m.raiseAlert(AlertError, kind, msgEntryGone)
		}
		ref := store.ItemRef{Page: p, Group: g, Item: i}
		item, err := m.store.Item(ref)
		if err != nil {
			return m.lookupFailed(kind, err)
		}
		if kind == EntryDescription {
			if err := m.store.SetDescription(ref, text); err != nil {
				return m.lookupFailed(kind, err)
			}
			m.setStatus("Description saved")
			break
		}
		if item.Title == text {
			return m.raiseAlert(AlertMessage, kind, msgTitleUnchanged)
		}
		if err := m.store.RenameItem(ref, text); err != nil {
			return m.lookupFailed(kind, err)
		}
		m.setStatus("Renamed to: " + text)
	}
	return nil
}

// beginEntry switches to TextEntry with the buffer set to initial.
func (m *Model) beginEntry(kind EntryKind, initial string) {
	m.buffer.Set(initial)
	m.mode = TextEntry(kind)
	m.syncInput()
}

// raiseAlert shows an alert. origin decides where dismissing it leads.
func (m *Model) raiseAlert(kind AlertKind, origin EntryKind, message string) tea.Cmd {
	m.mode = Alert(kind, origin)
	m.alertMsg = message
	if kind != AlertError {
		return nil
	}
	m.logger.Warn("error alert raised", "origin", origin, "message", message)
	return m.notifyCmd(message)
}

// lookupFailed reports a reference that no longer resolves.
func (m *Model) lookupFailed(origin EntryKind, err error) tea.Cmd {
	if !errors.Is(err, store.ErrNotFound) {
		m.logger.Error("unexpected store error", "err", err)
	} else {
		m.logger.Warn("lookup failed", "err", err)
	}
	return m.raiseAlert(AlertError, origin, msgEntryGone)
}

// resync reclamps the page and flat cursors after any mutation.
func (m *Model) resync() {
	m.sel.SyncPages(m.store.Len())
	m.sel.Sync(m.rows())
}

// focusGroup moves the flat cursor onto group g's header.
func (m *Model) focusGroup(g int) {
	rows := m.rows()
	for i, row := range rows {
		if row.IsGroup() && row.Group == g {
			m.sel.MoveTo(i, rows)
			return
		}
	}
	m.sel.Sync(rows)
}

func (m *Model) syncInput() {
	m.input.SetValue(m.buffer.String())
	m.input.CursorEnd()
}

// currentPage returns the selected page, or nil if none resolves.
func (m Model) currentPage() *store.Page {
	p, ok := m.sel.Page()
	if !ok {
		return nil
	}
	page, err := m.store.Page(p)
	if err != nil {
		return nil
	}
	return page
}

// rows flattens the selected page. It is recomputed on every call.
func (m Model) rows() []Row {
	return Flatten(m.currentPage())
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg.UI.MarkdownStyle != m.cfg.UI.MarkdownStyle {
		m.glamourRenderer = nil
	}
	m.cfg = cfg
	m.keys = NewKeyMap(cfg.Keys)
	if level, err := charmLog.ParseLevel(cfg.Log.Level); err == nil {
		m.logger.SetLevel(level)
	}
	if m.width > 0 {
		m.getGlamourRenderer(m.detailWidth())
	}
	m.logger.Info("config applied", "title", cfg.Title, "log_level", cfg.Log.Level)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.UI.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) copyCmd(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return statusMsg{text: "Copy failed", err: err}
		}
		return statusMsg{text: "Copied: " + text}
	}
}

func (m Model) notifyCmd(message string) tea.Cmd {
	if !m.cfg.UI.NotifyOnError {
		return nil
	}
	notify, title := m.notify, m.cfg.Title
	return func() tea.Msg {
		if err := notify(title, message); err != nil {
			return statusMsg{text: "Notification failed", err: err}
		}
		return nil
	}
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.cfg.UI.MarkdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "style", m.cfg.UI.MarkdownStyle, "err", err)
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
