package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all views.
const (
	ColorHeader    = lipgloss.Color("99")
	ColorBorder    = lipgloss.Color("63")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("241")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Icons used in the result view.
const (
	IconWarning = "⚠"
	IconOK      = "✓"
	IconCursor  = "›"
)
