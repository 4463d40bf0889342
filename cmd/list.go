/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/FamilyWing/internal/family"
	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List family members as a table",
	Long: `List every family member in insertion order with their parents.

Use --gender to narrow the list, or the global --json flag for scripting.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("gender", "", "only list members with this gender (male, female, other)")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	all := s.Snapshot()
	members := all
	if g, _ := cmd.Flags().GetString("gender"); g != "" {
		want := models.ParseGender(g)
		members = make([]models.Member, 0, len(all))
		for _, m := range all {
			if m.Gender == want {
				members = append(members, m)
			}
		}
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), members)
	}
	if len(members) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), family.NoMembers)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.MemberTableOf(members, all).Render())
	if !isQuiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d member(s)\n", len(members))
	}
	return nil
}
