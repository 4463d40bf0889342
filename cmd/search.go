/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Show the trees of members whose name matches",
	Long: `Search members by name (case-insensitive substring) and show each match
with its descendants. Equivalent to: familywing tree --search <query>`,
	Example: `  familywing search ada
  familywing search "de la" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetStore()
		if err != nil {
			return err
		}
		defer closeStore(s)
		return writeTree(cmd.OutOrStdout(), s.Snapshot(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
