package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/pagedo/pkg/store"
)

const minWidth = 40
const minHeight = 10

// View implements tea.Model. It only reads model state.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	switch m.mode.Kind() {
	case ModeTextEntry:
		return placeOverlay(m.renderInputModal(w), w, h)
	case ModeChooseAddTarget:
		return placeOverlay(m.renderChooseAddModal(), w, h)
	case ModeAlert:
		return placeOverlay(m.renderAlertModal(w), w, h)
	case ModeBrowsing:
		return m.renderBrowsing(w, h)
	default:
		return m.renderPageSelect(w, h)
	}
}

func (m Model) renderPageSelect(w, h int) string {
	var b strings.Builder

	b.WriteString(m.renderHeader(m.cfg.Title, w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	contentHeight := h - 4
	var lines []string
	pages := m.store.Pages()
	if len(pages) == 0 {
		lines = append(lines,
			FooterStyle.Render("No pages found..."),
			FooterStyle.Render("Press 'a' to create one."),
		)
	}
	selected, hasSelected := m.sel.Page()
	for i, page := range pages {
		line := "   " + page.Title
		if hasSelected && i == selected {
			line = IconPointer + " " + page.Title
			line = SelectedStyle.Render(padRight(line, w))
		}
		lines = append(lines, line)
	}

	lines = window(lines, selected, contentHeight)
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(strings.Join(lines, "\n"), i, w))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(m.keys.PageSelectHelp()))
	return b.String()
}

func (m Model) renderBrowsing(w, h int) string {
	page := m.currentPage()
	if page == nil {
		return m.renderPageSelect(w, h)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(page.Title, w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	contentHeight := h - 4
	leftWidth, rightWidth := panelWidths(w)

	left := m.renderRows(page, leftWidth, contentHeight)
	right := m.renderDetail(page, rightWidth, contentHeight)
	sep := lipgloss.NewStyle().Foreground(ColorGrayDim).Render("│")
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(left, i, leftWidth))
		b.WriteString(sep)
		b.WriteString(getLine(right, i, rightWidth))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(m.keys.BrowsingHelp()))
	return b.String()
}

// panelWidths splits the browsing view into the row list and the detail panel,
// leaving one column for the divider.
func panelWidths(w int) (left, right int) {
	left = w / 2
	right = w - left - 1
	if left < 20 {
		left = 20
	}
	if right < 20 {
		right = 20
	}
	return left, right
}

// detailWidth is the word-wrap width for the markdown renderer.
func (m Model) detailWidth() int {
	w := m.width
	if w < minWidth {
		w = minWidth
	}
	_, right := panelWidths(w)
	return right - 4
}

func (m Model) renderHeader(title string, width int) string {
	left := HeaderStyle.Render(title)

	total, done := m.store.CountItems()
	stats := HeaderCountStyle.Render(fmt.Sprintf("%d/%d done", done, total))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + StatusStyle.Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + status + stats
}

func (m Model) renderRows(page *store.Page, width, height int) string {
	rows := Flatten(page)
	if len(rows) == 0 {
		return FooterStyle.Render("Empty page. Press 'a' to add a group.")
	}

	cursor, _ := m.sel.Cursor()
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, m.renderRow(page, row, i == cursor, width))
	}
	return strings.Join(window(lines, cursor, height), "\n")
}

func (m Model) renderRow(page *store.Page, row Row, selected bool, width int) string {
	group := &page.Groups[row.Group]
	indent := strings.Repeat(DepthIndent, row.Depth)

	var line string
	if row.IsGroup() {
		icon := IconExpanded
		if !group.ShowItems {
			icon = IconCollapsed
		}
		count := HeaderCountStyle.Render(fmt.Sprintf(" (%d/%d)", group.DoneCount(), len(group.Items)))
		line = indent + icon + " " + GroupStyle.Render(group.Title) + count
	} else {
		item := &group.Items[row.Item]
		line = indent + stateIcon(item.State) + " " + item.Title
	}

	if selected {
		return SelectedStyle.Render(padRight(line, width))
	}
	return line
}

// renderDetail shows the row under the cursor as markdown.
func (m Model) renderDetail(page *store.Page, width, height int) string {
	row, ok := m.sel.Row(Flatten(page))
	if !ok {
		return FooterStyle.Render(" Select a row to view details")
	}

	group := &page.Groups[row.Group]
	var md strings.Builder
	if row.IsGroup() {
		md.WriteString("# " + group.Title + "\n\n")
		md.WriteString(fmt.Sprintf("**Items:** %d | **Done:** %d\n\n", len(group.Items), group.DoneCount()))
		for _, item := range group.Items {
			mark := " "
			if item.IsDone() {
				mark = "x"
			}
			md.WriteString("- [" + mark + "] " + item.Title + "\n")
		}
	} else {
		item := &group.Items[row.Item]
		md.WriteString("# " + item.Title + "\n\n")
		md.WriteString(fmt.Sprintf("**Group:** %s | **State:** %s | **ID:** %d\n\n", group.Title, item.State, item.ID))
		if item.Description != "" {
			md.WriteString(item.Description + "\n")
		}
	}

	rendered := md.String()
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(rendered); err == nil {
			rendered = out
		}
	}
	rendered = strings.TrimRight(rendered, "\n ")
	lines := strings.Split(rendered, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderInputModal(w int) string {
	kind, _ := m.mode.Entry()

	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(kind.Prompt()))
	b.WriteString("\n\n")

	input := m.input
	input.Width = w/2 - 8
	if input.Width < 20 {
		input.Width = 20
	}
	b.WriteString(InputPromptStyle.Render("> "))
	b.WriteString(input.View())
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render(m.keys.TextEntryHelp()))

	return ModalStyle.Render(b.String())
}

func (m Model) renderChooseAddModal() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render("Add"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.keys.ChooseAddHelp(), "\n"))
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render(m.keys.Back.Help().Key + " back"))
	return ModalStyle.Render(b.String())
}

func (m Model) renderAlertModal(w int) string {
	kind, _ := m.mode.AlertKind()
	style := alertStyle(kind)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(style.GetBorderTopForeground()).Render(kind.Title()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(w / 2).Render(m.alertMsg))
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render("Press any key to continue"))
	return style.Render(b.String())
}

// window returns at most height lines, scrolled so that line cursor stays visible.
func window(lines []string, cursor, height int) []string {
	if height < 1 || len(lines) <= height {
		return lines
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		return padRight(lines[idx], width)
	}
	return strings.Repeat(" ", width)
}

func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := (height - len(modalLines)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	leftPadding := (width - lipgloss.Width(modalLines[0])) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
