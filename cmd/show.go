/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [member_id]",
	Short: "Show one member with their parents, children and siblings",
	Long: `Show one member in detail: gender, date of birth and ID, followed by the
resolved parents, children and siblings.

With --ancestors, every recorded ancestor is listed as well, nearest first.

The member can be given as a full ID or a unique ID prefix. Without an ID on a
terminal, a searchable picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolP("ancestors", "a", false, "also list every recorded ancestor")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	members := s.Snapshot()
	m, err := pickMember(members, args, "Select member")
	if err != nil {
		if exitOnInterrupt(err) {
			return nil
		}
		return err
	}

	detail := ui.NewMemberDetail(m, members)
	if withAncestors, _ := cmd.Flags().GetBool("ancestors"); withAncestors {
		detail = detail.WithAncestors(members)
	}
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), detail)
	}

	width := 0
	if isInteractive() {
		width = ui.TerminalWidth(80)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMemberDetail(detail, width))
	return nil
}
