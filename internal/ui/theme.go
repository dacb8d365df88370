package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lazybear/internal/model"
)

// Lazybear theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconBear     = "🐻"
	IconTask     = "📋"
	IconWater    = "💧"
	IconHealth   = "💊"
	IconWallet   = "👛"
	IconCoupon   = "🎟️"
	IconList     = "📝"
	IconFood     = "🍜"
	IconTrip     = "🧳"
	IconNote     = "📒"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconBell     = "🔔"
	IconSun      = "☀️"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconCalendar = "📅"
)

var (
	cPrimary = lipgloss.Color("172") // honey brown
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedDay = lipgloss.NewStyle().Bold(true).Reverse(true)
	TodayCell   = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

// PaletteColor maps a document theme to its primary terminal color.
func PaletteColor(t model.Theme) lipgloss.Color {
	switch t {
	case model.ThemePink:
		return lipgloss.Color("211")
	case model.ThemePurple:
		return lipgloss.Color("141")
	case model.ThemeBlue:
		return lipgloss.Color("117")
	case model.ThemeGreen:
		return lipgloss.Color("114")
	case model.ThemeYellow:
		return lipgloss.Color("221")
	default:
		return cPrimary
	}
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PriorityText renders a priority with its urgency color.
func PriorityText(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return Bad.Render("HIGH")
	case model.PriorityMedium:
		return Warn.Render("MED")
	case model.PriorityLow:
		return Good.Render("LOW")
	default:
		return Muted.Render(string(p))
	}
}

func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return "[ ]"
}
