package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - focused container, active tab
	ColorHighlight = "205" // Magenta - drop target, dragged divider
	ColorDanger    = "196" // Red - errors in the status line
	ColorMuted     = "241" // Gray - idle borders, hints
	ColorText      = "252" // Light gray - tab labels
	ColorDim       = "243" // Darker gray - panel slot placeholder
)

// Styles contains the shared styles for containers, tabs, dividers and the
// floating shelf.
var Styles = struct {
	Container        lipgloss.Style // Idle container border
	ContainerFocused lipgloss.Style // Focused container border
	ContainerTarget  lipgloss.Style // Container under a panel drag

	Tab       lipgloss.Style // Background tab
	TabActive lipgloss.Style // Foreground tab
	Zone      lipgloss.Style // Drop zone marker in a target's header

	Divider       lipgloss.Style
	DividerActive lipgloss.Style

	Shelf lipgloss.Style // Floating window shelf
	Chip  lipgloss.Style // Floating window chip

	Slot   lipgloss.Style // Placeholder panel content
	Status lipgloss.Style
	Error  lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	ContainerFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	ContainerTarget: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Zone: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DividerActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Shelf: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Chip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Slot: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
}
