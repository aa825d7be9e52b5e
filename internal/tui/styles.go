package tui

import "github.com/charmbracelet/lipgloss"

// Dusky palette shared by every panel.
var (
	PrimaryColor = lipgloss.Color("#cba6f7") // mauve - borders, active tab
	SuccessColor = lipgloss.Color("#a6e3a1") // green - ON values
	ErrorColor   = lipgloss.Color("#f38ba8") // red - write failures
	WarningColor = lipgloss.Color("#f9e2af") // yellow - unset markers
	MutedColor   = lipgloss.Color("#6c7086") // gray - secondary info
	TextColor    = lipgloss.Color("#cdd6f4") // main content
)

var (
	// BorderStyle draws the header box.
	BorderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// TitleStyle is for the centered panel title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// TabStyle is for inactive tabs on the tab strip.
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ActiveTabStyle highlights the active tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Underline(true)

	// ItemStyle is for unselected item rows.
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// SelectedItemStyle highlights the row under the cursor.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Reverse(true)

	// ValueOnStyle and ValueOffStyle color boolean values.
	ValueOnStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
	ValueOffStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// UnsetStyle marks values whose key is absent from the file.
	UnsetStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ScrollHintStyle is for the more-above/more-below indicator lines.
	ScrollHintStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// StatusErrorStyle surfaces recoverable write failures.
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// StatusInfoStyle shows the backing file path when nothing is wrong.
	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// FooterStyle is for the static key help line.
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Display markers.
const (
	markerOn      = "ON"
	markerOff     = "OFF"
	markerUnset   = "⚠ not set"
	markerSubmenu = "▸"
	markerUp      = "↑ more"
	markerDown    = "↓ more"
)
