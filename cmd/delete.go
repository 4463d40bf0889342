/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/spf13/cobra"
)

const deleteConfirmText = "Delete this member? Their children will lose the parent link."

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [member_id]",
	Aliases: []string{"rm"},
	Short:   "Delete a family member",
	Long: `Delete a family member by ID or unique ID prefix. Children of the deleted
member keep their other parent but lose the link to this one.

A confirmation prompt is shown unless --yes is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	members := s.Snapshot()
	target, err := pickMember(members, args, "Select member to delete")
	if err != nil {
		if exitOnInterrupt(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
			return nil
		}
		return err
	}

	children := family.ChildrenOf(members, target.ID)
	if len(children) > 0 && isInteractive() && !isJSON() {
		names := make([]string, 0, len(children))
		for _, c := range children {
			names = append(names, "  "+c.Label())
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderWarningPanel(
			fmt.Sprintf("%s has %d child(ren)", target.Name, len(children)),
			strings.Join(names, "\n")))
	} else if !isQuiet() && !isJSON() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s", target.Name, target.Gender.Symbol())
		if len(children) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " has %d child(ren)", len(children))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	assumeYes, _ := cmd.Flags().GetBool("yes")
	if !confirmOrAbort(cmd.OutOrStdout(), deleteConfirmText, assumeYes) {
		return nil
	}

	if err := s.Delete(target.ID); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"deleted":  target.ID,
			"unlinked": len(children),
		})
	}
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.", target.Name)
		if len(children) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " Unlinked %d child(ren).", len(children))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
