/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/josephgoksu/FamilyWing/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// writeClipboard is swapped out by tests.
var writeClipboard = clipboard.WriteAll

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all members as JSON or YAML",
	Long: `Export the whole family as pretty-printed JSON (two-space indent), the same
format 'familywing import' reads back.

Examples:
  familywing export > family.json
  familywing export --clipboard
  familywing export --format yaml --output family.yaml
  familywing export --format toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", "", "output format: json, yaml or toml (default from config)")
	exportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	exportCmd.Flags().Bool("clipboard", false, "copy the export to the system clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = GetConfig().Export.Format
	}
	format = strings.ToLower(format)

	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	data, err := store.Encode(s.Snapshot(), format)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	toClipboard, _ := cmd.Flags().GetBool("clipboard")

	switch {
	case toClipboard:
		if err := writeClipboard(string(data)); err != nil {
			return fmt.Errorf("could not copy to clipboard: %w", err)
		}
		if !isQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s copied to clipboard\n", strings.ToUpper(formatOrJSON(format)))
		}
	case output != "":
		if err := afero.WriteFile(afero.NewOsFs(), output, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		if !isQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d member(s) to %s\n", len(s.Snapshot()), output)
		}
	default:
		out := string(data)
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}

func formatOrJSON(format string) string {
	if format == "" {
		return store.FormatJSON
	}
	return format
}
