/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/josephgoksu/FamilyWing/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// readClipboard is swapped out by tests.
var readClipboard = clipboard.ReadAll

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [file|-]",
	Short: "Replace all members with an exported JSON list",
	Long: `Replace the whole family with a JSON array previously written by
'familywing export'. Use "-" to read from stdin or --clipboard to read the
system clipboard.

The payload must be a JSON array. Anything else is rejected and the current
family is left untouched. Entries are read leniently: missing fields stay
empty and parent links to unknown IDs are kept as they are.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("clipboard", false, "read the JSON from the system clipboard")
	importCmd.Flags().BoolP("yes", "y", false, "replace existing members without asking")
}

func runImport(cmd *cobra.Command, args []string) error {
	fromClipboard, _ := cmd.Flags().GetBool("clipboard")

	var data []byte
	switch {
	case fromClipboard:
		text, err := readClipboard()
		if err != nil {
			return fmt.Errorf("could not read clipboard: %w", err)
		}
		data = []byte(text)
	case len(args) == 1:
		var err error
		if data, err = readInput(cmd, args[0]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("give a file, \"-\" for stdin, or --clipboard")
	}

	// Parse before asking so a bad payload never reaches the confirmation.
	members, err := store.ParseMembers(data)
	if err != nil {
		return err
	}

	s, err := GetStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if existing := len(s.Snapshot()); existing > 0 {
		assumeYes, _ := cmd.Flags().GetBool("yes")
		label := fmt.Sprintf("Replace the %d existing member(s)", existing)
		if !confirmOrAbort(cmd.OutOrStdout(), label, assumeYes) {
			return nil
		}
	}

	if err := s.ReplaceAll(members); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]int{"imported": len(s.Snapshot())})
	}
	if isQuiet() {
		return nil
	}
	if isInteractive() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccessPanel("Imported successfully", fmt.Sprintf("%d member(s)", len(s.Snapshot()))))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported successfully (%d member(s))\n", len(s.Snapshot()))
	return nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// readInput reads a file argument, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return readAll(cmd.InOrStdin())
	}
	data, err := afero.ReadFile(afero.NewOsFs(), path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}
	return data, nil
}
