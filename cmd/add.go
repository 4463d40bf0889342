/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/josephgoksu/FamilyWing/internal/util"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a family member",
	Long: `Add a family member.

Without --name on a terminal, an interactive form asks for each field. Father
and mother can be chosen from the members marked male and female.

Examples:
  familywing add --name "Ada Lovelace" --gender female --dob 1815-12-10
  familywing add --name "Byron" --gender male
  familywing add --name "Ada" --father 0192f1c4`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addMemberFlags(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	members := s.Snapshot()
	draft, err := applyMemberFlags(cmd, models.Draft{}, members)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("name") && isInteractive() && !isJSON() {
		draft, err = ui.MemberForm("Add member", draft, members, "")
		if errors.Is(err, ui.ErrFormCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	id, err := s.Add(draft)
	if err != nil {
		return err
	}
	m, _ := s.Get(id)

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), m)
	}
	warnParentGender(cmd.OutOrStdout(), draft, members)
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (ID: %s)\n", m.Name, m.Gender.Symbol(), util.ShortID(m.ID, 0))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), m.ID)
	}
	return nil
}
