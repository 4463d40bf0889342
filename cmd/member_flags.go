/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/josephgoksu/FamilyWing/internal/util"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cobra"
)

// addMemberFlags registers the editable member fields on cmd.
func addMemberFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "full name (required)")
	cmd.Flags().String("gender", "", "male, female or other")
	cmd.Flags().String("dob", "", "date of birth, e.g. 1815-12-10")
	cmd.Flags().String("father", "", "father's member ID or unique prefix (empty to clear)")
	cmd.Flags().String("mother", "", "mother's member ID or unique prefix (empty to clear)")
}

// anyMemberFlagChanged reports whether the user set any field flag.
func anyMemberFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "gender", "dob", "father", "mother"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyMemberFlags overlays the flags the user set onto d. Parent
// references are resolved against members by ID prefix.
func applyMemberFlags(cmd *cobra.Command, d models.Draft, members []models.Member) (models.Draft, error) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		d.Name, _ = flags.GetString("name")
	}
	if flags.Changed("gender") {
		g, _ := flags.GetString("gender")
		d.Gender = models.ParseGender(g)
	}
	if flags.Changed("dob") {
		d.DOB, _ = flags.GetString("dob")
	}
	for _, p := range []struct {
		flag string
		dst  *string
	}{{"father", &d.FatherID}, {"mother", &d.MotherID}} {
		if !flags.Changed(p.flag) {
			continue
		}
		ref, _ := flags.GetString(p.flag)
		if ref == "" {
			*p.dst = ""
			continue
		}
		id, err := util.ResolveMemberID(members, ref)
		if err != nil {
			return d, fmt.Errorf("--%s: %w", p.flag, err)
		}
		*p.dst = id
	}
	return d, nil
}

// warnParentGender prints a note when a parent does not carry the gender
// the father/mother choice lists would have offered.
func warnParentGender(w io.Writer, d models.Draft, members []models.Member) {
	if isQuiet() {
		return
	}
	check := func(role, id string, want models.Gender) {
		if id == "" {
			return
		}
		for _, m := range members {
			if m.ID == id && m.Gender != want {
				fmt.Fprintf(w, "Note: %s is recorded as %s but is not marked %s.\n", m.Name, role, want)
			}
		}
	}
	check("father", d.FatherID, models.GenderMale)
	check("mother", d.MotherID, models.GenderFemale)
}
