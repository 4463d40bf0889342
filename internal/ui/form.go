package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/internal/util"
	"github.com/josephgoksu/FamilyWing/models"
)

// ErrFormCancelled is returned when the user aborts the member form.
var ErrFormCancelled = errors.New("form cancelled")

// MemberForm asks for a member's fields, starting from initial. selfID is
// the member being edited (empty when adding) and is never offered as its
// own parent.
func MemberForm(title string, initial models.Draft, members []models.Member, selfID string) (models.Draft, error) {
	draft := initial
	form := newMemberForm(title, &draft, members, selfID)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return models.Draft{}, ErrFormCancelled
		}
		return models.Draft{}, fmt.Errorf("member form: %w", err)
	}
	return draft, nil
}

func newMemberForm(title string, d *models.Draft, members []models.Member, selfID string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Name *").
				Value(&d.Name).
				Validate(validateName),
			huh.NewSelect[models.Gender]().
				Title("Gender").
				Options(genderOptions()...).
				Value(&d.Gender),
			huh.NewInput().
				Title("Date of birth").
				Placeholder("YYYY-MM-DD").
				Value(&d.DOB),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Father").
				Options(parentOptions(family.FatherCandidates(members), selfID, d.FatherID)...).
				Value(&d.FatherID),
			huh.NewSelect[string]().
				Title("Mother").
				Options(parentOptions(family.MotherCandidates(members), selfID, d.MotherID)...).
				Value(&d.MotherID),
		),
	)
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func genderOptions() []huh.Option[models.Gender] {
	opts := []huh.Option[models.Gender]{huh.NewOption("Select", models.GenderUnset)}
	for _, g := range models.AllGenders() {
		opts = append(opts, huh.NewOption(g.String(), g))
	}
	return opts
}

// parentOptions lists "None" followed by the candidates. A current value
// that is not a candidate stays selectable so editing does not drop it.
func parentOptions(candidates []models.Member, selfID, current string) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	found := current == ""
	for _, c := range candidates {
		if c.ID == selfID {
			continue
		}
		if c.ID == current {
			found = true
		}
		opts = append(opts, huh.NewOption(c.Label(), c.ID))
	}
	if !found {
		opts = append(opts, huh.NewOption("(unlisted) "+util.ShortID(current, 0), current))
	}
	return opts
}
