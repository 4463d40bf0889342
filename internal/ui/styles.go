package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/FamilyWing/models"
)

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorCyan      = lipgloss.Color("87")
	ColorBlue      = lipgloss.Color("75")

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleText    = lipgloss.NewStyle().Foreground(ColorText)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	StyleSectionTitle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Underline(true)

	// Tree connectors and the browse cursor
	StyleConnector = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSelected  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// Gender suffixes
	StyleMale   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleFemale = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleOther  = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

// GenderStyle returns the style used for g's symbol.
func GenderStyle(g models.Gender) lipgloss.Style {
	switch g {
	case models.GenderMale:
		return StyleMale
	case models.GenderFemale:
		return StyleFemale
	default:
		return StyleOther
	}
}

// GenderIcon returns g's symbol rendered in its color.
func GenderIcon(g models.Gender) string {
	return Icon(g.Symbol(), GenderStyle(g))
}
