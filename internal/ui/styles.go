package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan: headings
	colorAccent  = lipgloss.Color("#FFD700") // Gold: routes, attention
	colorSuccess = lipgloss.Color("#00E676") // Green: placed, unlocked
	colorDanger  = lipgloss.Color("#FF5252") // Red: errors, locked
	colorMuted   = lipgloss.Color("#636363") // Gray: de-emphasized
	colorBlue    = lipgloss.Color("#5B8DEF") // Blue: abilities
)

// Status icons.
const (
	iconOK      = "✓"
	iconFailed  = "✗"
	iconLocked  = "⊘"
	iconBullet  = "•"
	iconArrow   = "←"
	iconPending = "·"
)

// styles holds every style the printer uses. With color disabled every
// style renders its input unchanged.
type styles struct {
	heading  lipgloss.Style
	ability  lipgloss.Style
	obstacle lipgloss.Style
	route    lipgloss.Style
	ok       lipgloss.Style
	locked   lipgloss.Style
	err      lipgloss.Style
	muted    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			heading:  plain,
			ability:  plain,
			obstacle: plain,
			route:    plain,
			ok:       plain,
			locked:   plain,
			err:      plain,
			muted:    plain,
		}
	}
	return styles{
		heading:  lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		ability:  lipgloss.NewStyle().Foreground(colorBlue),
		obstacle: lipgloss.NewStyle(),
		route:    lipgloss.NewStyle().Foreground(colorAccent),
		ok:       lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		locked:   lipgloss.NewStyle().Foreground(colorDanger),
		err:      lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(colorMuted),
	}
}
