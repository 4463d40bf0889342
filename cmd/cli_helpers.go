package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/josephgoksu/FamilyWing/internal/ui"
	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
)

// isInteractive is swapped out by tests.
var isInteractive = ui.IsInteractive

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// confirmOrAbort asks a yes/no question. JSON mode and non-terminals never prompt
// and count as "no" unless assumeYes is set.
func confirmOrAbort(w io.Writer, label string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	if isJSON() || !isInteractive() {
		fmt.Fprintln(w, "Refusing to continue without confirmation. Re-run with --yes.")
		return false
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		fmt.Fprintln(w, "Cancelled.")
		return false
	}
	return true
}
