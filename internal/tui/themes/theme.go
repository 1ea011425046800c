// Package themes defines the lipgloss palettes of the dashboard.
package themes

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/fraudwatch/internal/model"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title           lipgloss.Style
	Subtitle        lipgloss.Style
	Normal          lipgloss.Style
	Bold            lipgloss.Style
	Muted           lipgloss.Style
	Input           lipgloss.Style
	InputDisabled   lipgloss.Style
	Button          lipgloss.Style
	ButtonDisabled  lipgloss.Style
	TableHeader     lipgloss.Style
	SuspiciousRow   lipgloss.Style
	Skeleton        lipgloss.Style
	EmptyState      lipgloss.Style
	ErrorBanner     lipgloss.Style
	ScoreLow        lipgloss.Style
	ScoreMedium     lipgloss.Style
	ScoreHigh       lipgloss.Style
	BadgeSuspicious lipgloss.Style
	BadgeNormal     lipgloss.Style
	Modal           lipgloss.Style
	ModalTitle      lipgloss.Style
	Help            lipgloss.Style
	Primary         lipgloss.Color
	Error           lipgloss.Color
	Success         lipgloss.Color
}

// ScoreStyle returns the style for a fraud score tier.
func (t Theme) ScoreStyle(tier model.ScoreTier) lipgloss.Style {
	switch tier {
	case model.TierHigh:
		return t.ScoreHigh
	case model.TierMedium:
		return t.ScoreMedium
	default:
		return t.ScoreLow
	}
}

// BadgeStyle returns the style for the status badge.
func (t Theme) BadgeStyle(suspicious bool) lipgloss.Style {
	if suspicious {
		return t.BadgeSuspicious
	}
	return t.BadgeNormal
}

// palette holds the colors a theme is built from.
type palette struct {
	primary    string
	foreground string
	subtle     string
	muted      string
	border     string
	background string
	surface    string
	danger     string
	dangerBg   string
	warning    string
	success    string
}

func newTheme(p palette) Theme {
	return Theme{
		Primary: lipgloss.Color(p.primary),
		Error:   lipgloss.Color(p.danger),
		Success: lipgloss.Color(p.success),

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.foreground)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),

		// Search bar
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.primary)).
			Padding(0, 1),
		InputDisabled: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Foreground(lipgloss.Color(p.muted)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.background)).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Background(lipgloss.Color(p.surface)).
			Padding(0, 1),

		// Results table
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.subtle)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(p.border)),
		SuspiciousRow: lipgloss.NewStyle().
			Background(lipgloss.Color(p.dangerBg)),
		Skeleton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.surface)),
		EmptyState: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)).
			Italic(true),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(p.danger)).
			Padding(0, 1),
		ScoreLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),
		ScoreMedium: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)),
		ScoreHigh: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Bold(true),
		BadgeSuspicious: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.danger)).
			Bold(true),
		BadgeNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)),

		// Alert dialog
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.danger)).
			Padding(1, 3),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.danger)),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#7c3aed",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	muted:      "#737373",
	border:     "#404040",
	background: "#1a1a1a",
	surface:    "#262626",
	danger:     "#ef4444",
	dangerBg:   "#3f1d1d",
	warning:    "#f59e0b",
	success:    "#10b981",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	muted:      "#6c7086",
	border:     "#45475a",
	background: "#1e1e2e",
	surface:    "#313244",
	danger:     "#f38ba8",
	dangerBg:   "#45283c",
	warning:    "#f9e2af",
	success:    "#a6e3a1",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// Names lists the selectable theme names.
func Names() []string {
	return []string{"default", "catppuccin-mocha"}
}
