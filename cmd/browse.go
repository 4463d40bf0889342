/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the family tree interactively",
	Long: `Open a full-screen view of the family tree.

Keys:
  ↑/k ↓/j   move
  enter     show or hide the selected member's details
  /         search by name (esc clears, enter keeps the filter)
  r         reload from disk
  q         quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isInteractive() {
			return fmt.Errorf("browse needs a terminal; use 'familywing tree' instead")
		}
		s, err := GetStore()
		if err != nil {
			return err
		}
		defer closeStore(s)
		return ui.Browse(s)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
