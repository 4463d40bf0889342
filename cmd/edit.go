/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [member_id]",
	Aliases: []string{"update"},
	Short:   "Edit a family member",
	Long: `Edit a family member. Flags that are not given keep their current value;
pass an empty --father or --mother to remove the link.

Without field flags on a terminal, the member form opens prefilled.

Examples:
  familywing edit 0192f1c4 --dob 1815-12-10
  familywing edit ada --mother ""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	addMemberFlags(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	members := s.Snapshot()
	target, err := pickMember(members, args, "Select member to edit")
	if err != nil {
		if exitOnInterrupt(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return err
	}

	draft, err := applyMemberFlags(cmd, target.Draft(), members)
	if err != nil {
		return err
	}

	if !anyMemberFlagChanged(cmd) && isInteractive() && !isJSON() {
		draft, err = ui.MemberForm("Edit member", draft, members, target.ID)
		if errors.Is(err, ui.ErrFormCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := s.Update(target.ID, draft); err != nil {
		return err
	}
	updated, _ := s.Get(target.ID)

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), updated)
	}
	warnParentGender(cmd.OutOrStdout(), draft, members)
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s\n", updated.Name, updated.Gender.Symbol())
	}
	return nil
}
