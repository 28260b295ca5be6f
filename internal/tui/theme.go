package tui

import "github.com/charmbracelet/lipgloss"

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Text
	colorText    = lipgloss.Color("#e6edf3")
	colorTextDim = lipgloss.Color("#8b949e")

	// Accents
	colorBlue = lipgloss.Color("#58a6ff")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Prediction list
var (
	listRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	listRowFocusedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)
)

// Detail pane
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)
)

// Graph placeholder
var (
	graphLabelStyle = lipgloss.NewStyle().
		Foreground(colorTextDim)
)
