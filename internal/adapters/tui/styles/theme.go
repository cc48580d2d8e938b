package styles

import "github.com/charmbracelet/lipgloss"

// Palette adapts to light and dark terminals
var (
	Accent   = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	Folder   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"}
	Faint    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	Good     = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	Bad      = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	OnAccent = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1B4B"}
)

var base = lipgloss.NewStyle()

// Layout
var (
	App      = base.Padding(1, 2)
	Title    = base.Bold(true).Foreground(Accent)
	Subtitle = base.Foreground(Faint).Italic(true)
)

// Picker and result rows
var (
	Dir        = base.Foreground(Folder).Bold(true)
	File       = base.Foreground(Faint)
	Selected   = base.Background(Accent).Foreground(OnAccent).Bold(true)
	Breadcrumb = base.Foreground(Good)
	ResultPath = base.Foreground(Faint).PaddingLeft(2)
)

// Query input
var (
	InputFocused = base.Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(0, 1)
	InputLabel   = base.Foreground(Good).Bold(true)
)

// Key hints and status line
var (
	HelpKey   = base.Foreground(Accent).Bold(true)
	HelpDesc  = base.Foreground(Faint)
	MutedText = base.Foreground(Faint)
	Success   = base.Foreground(Good).Bold(true)
	ErrorMsg  = base.Foreground(Bad).Bold(true)
)
