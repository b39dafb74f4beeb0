// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Semantic colors of the active palette.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Entry field.
	InputFocusedStyle lipgloss.Style
	InputBlurredStyle lipgloss.Style

	// Task table.
	TableHeaderStyle  lipgloss.Style
	TaskTextStyle     lipgloss.Style
	TaskDoneTextStyle lipgloss.Style
	TaskTimeStyle     lipgloss.Style
	TaskCursorStyle   lipgloss.Style
	PendingBadgeStyle lipgloss.Style
	DoneBadgeStyle    lipgloss.Style
	DeleteStyle       lipgloss.Style
	EmptyRowStyle     lipgloss.Style

	// Pagination footer.
	PageLabelStyle     lipgloss.Style
	PageButtonStyle    lipgloss.Style
	PageButtonOffStyle lipgloss.Style
	FooterHelpStyle    lipgloss.Style
	ModalStyle         lipgloss.Style
	ModalHelpStyle     lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	InputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	InputBlurredStyle = InputFocusedStyle.
		BorderForeground(ColorSurface)

	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Bold(true)
	TaskTextStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TaskDoneTextStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	TaskTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TaskCursorStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	PendingBadgeStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorWarning).
		Foreground(ColorBackground)
	DoneBadgeStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSuccess).
		Foreground(ColorBackground)
	DeleteStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	EmptyRowStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	PageLabelStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	PageButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorForeground)
	PageButtonOffStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(ColorMuted).
		Faint(true)
	FooterHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
}

// StatusBadge renders the Pending/Done label for a task state.
func StatusBadge(done bool) string {
	if done {
		return DoneBadgeStyle.Render("Done")
	}
	return PendingBadgeStyle.Render("Pending")
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
