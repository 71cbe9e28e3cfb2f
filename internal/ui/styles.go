package ui

import "github.com/charmbracelet/lipgloss"

// One Dark palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

const columnWidth = 28

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	FilterStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			PaddingLeft(1)

	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			Width(columnWidth)

	ActiveColumnStyle = ColumnStyle.
				BorderForeground(ColorBlue)

	ColumnTitleStyle = lipgloss.NewStyle().
				Foreground(ColorMagenta).
				Bold(true)

	TaskStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	DoneTaskStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Strikethrough(true)

	SelectedTaskStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			Italic(true)

	FormStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ColorYellow).
			PaddingLeft(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	InputPromptStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)
)
