/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/FamilyWing/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Long: `Inspect or create the FamilyWing configuration file.

Settings are read, in increasing priority, from built-in defaults, the config
file (./.familywing/.familywing.yaml, then /root/.familywing.yaml), FAMILYWING_*
environment variables (e.g. FAMILYWING_DATA_BACKEND=sqlite) and flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), cfg)
		}
		data, err := config.MarshalConfig(cfg)
		if err != nil {
			return err
		}
		if used := viper.ConfigFileUsed(); used != "" && !isQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "# Loaded from %s\n", used)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with the default settings.

By default the file goes to ./.familywing/.familywing.yaml so it applies to the
current directory. Use --global to write /root/.familywing.yaml instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		global, _ := cmd.Flags().GetBool("global")

		path := filepath.Join(config.DirName, config.ConfigName+".yaml")
		if global {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("find home directory: %w", err)
			}
			path = filepath.Join(home, config.ConfigName+".yaml")
		}

		err := config.WriteConfigFile(afero.NewOsFs(), path, config.DefaultAppConfig(), force)
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		if err != nil {
			return err
		}
		if !isQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configInitCmd.Flags().Bool("global", false, "write to the home directory instead of ./.familywing")
}
