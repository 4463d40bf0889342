package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestStyles(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := StyleSuccess.Render("Test")
	assert.Contains(t, out, "Test")
	assert.NotEqual(t, "Test", out, "Style should add ANSI codes when forced")
}

func TestIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	out := Icon("X", StyleError)
	assert.Contains(t, out, "X")
	assert.NotEqual(t, "X", out)
}

func TestGenderIcon(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	assert.Contains(t, GenderIcon(models.GenderMale), "♂")
	assert.Contains(t, GenderIcon(models.GenderFemale), "♀")
	assert.Contains(t, GenderIcon(models.GenderOther), "•")
	assert.Contains(t, GenderIcon(models.GenderUnset), "•")
	assert.NotEqual(t, GenderIcon(models.GenderMale), GenderIcon(models.GenderFemale))
}
