package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/pagedo/pkg/store"
)

// Color palette
var (
	ColorPurple      = lipgloss.Color("#7D56F4")
	ColorGreen       = lipgloss.Color("#25A065")
	ColorBlue        = lipgloss.Color("#4285F4")
	ColorRed         = lipgloss.Color("#E05252")
	ColorYellow      = lipgloss.Color("#E5C07B")
	ColorGray        = lipgloss.Color("#626262")
	ColorGrayDim     = lipgloss.Color("#404040")
	ColorWhite       = lipgloss.Color("#FFFFFF")
	ColorOffWhite    = lipgloss.Color("#D0D0D0")
	ColorSelectionBg = lipgloss.Color("#2D3B4D")
	ColorCyan        = lipgloss.Color("#56B6C2")
	ColorOrange      = lipgloss.Color("#D19A66")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Row styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorSelectionBg)

	GroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorOffWhite)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	LateStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	DepthIndent = "  "
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPurple).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorPurple).
				Bold(true)
)

// Alert styles, one border color per severity.
var (
	AlertErrorStyle   = ModalStyle.BorderForeground(ColorRed)
	AlertWarningStyle = ModalStyle.BorderForeground(ColorYellow)
	AlertMessageStyle = ModalStyle.BorderForeground(ColorCyan)
)

// Icons
const (
	IconIdle      = "○"
	IconDone      = "✓"
	IconFailed    = "✗"
	IconLate      = "◷"
	IconExpanded  = "▼"
	IconCollapsed = "▶"
	IconPointer   = ">>"
)

// stateIcon renders the status icon for an item state.
func stateIcon(s store.ItemState) string {
	switch s {
	case store.StateDone:
		return DoneStyle.Render(IconDone)
	case store.StateFailed:
		return FailedStyle.Render(IconFailed)
	case store.StateLate:
		return LateStyle.Render(IconLate)
	default:
		return IdleStyle.Render(IconIdle)
	}
}

func alertStyle(k AlertKind) lipgloss.Style {
	switch k {
	case AlertError:
		return AlertErrorStyle
	case AlertWarning:
		return AlertWarningStyle
	default:
		return AlertMessageStyle
	}
}
