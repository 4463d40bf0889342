/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/josephgoksu/FamilyWing/internal/config"
	"github.com/josephgoksu/FamilyWing/internal/kv"
	"github.com/josephgoksu/FamilyWing/internal/logger"
	"github.com/josephgoksu/FamilyWing/internal/util"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/josephgoksu/FamilyWing/store"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// ErrNoMembersFound is returned when an interactive selection is attempted but no members exist.
	ErrNoMembersFound = errors.New("no members found")
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "familywing",
	Short: "FamilyWing - keep your family tree in the terminal",
	Long: `FamilyWing records family members (name, gender, date of birth and
father/mother links) and shows them as a tree, a table, or one member at a time.

Examples:
  familywing add --name "Ada" --gender female --dob 1815-12-10
  familywing tree
  familywing show ada
  familywing export --clipboard`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// setupRun loads configuration and prepares logging before any command runs.
func setupRun(cmd *cobra.Command, args []string) error {
	if err := InitConfig(); err != nil {
		return err
	}
	logger.Setup(cmd.ErrOrStderr(), isVerbose())
	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath(), args)
	logger.SetBasePath(GetConfig().Data.Dir)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		HandleFatalError(friendlyMessage(err), err)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	// Assigned here: setupRun reads rootCmd's flags, so it cannot sit in the literal.
	rootCmd.PersistentPreRunE = setupRun
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.familywing/.familywing.yaml or $HOME/.familywing.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print essential output")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the family data")
	rootCmd.PersistentFlags().String("backend", "", "storage backend: file, sqlite or badger (default \""+config.DefaultBackend+"\")")
}

// GetStore opens the configured slot and loads the member store.
func GetStore() (*store.KVMemberStore, error) {
	cfg := GetConfig()
	slot, err := kv.Open(kv.Config{
		Backend: cfg.Data.Backend,
		Dir:     cfg.Data.Dir,
		Logger:  slog.Default(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage at %s: %w", cfg.Data.Backend, cfg.Data.Dir, err)
	}

	s := store.NewKVMemberStore(slot, store.WithKey(cfg.Data.Key))
	logger.SetMemberCount(len(s.Snapshot()))
	return s, nil
}

// closeStore closes s and reports a save failure left behind by the last mutation.
func closeStore(s *store.KVMemberStore) {
	if err := s.LastSaveError(); err != nil {
		PrintError("Warning: your last change could not be saved to disk.", err)
	}
	if err := s.Close(); err != nil {
		LogError("close store", err)
	}
}

// resolveMember maps an ID or unique prefix argument to a member.
func resolveMember(members []models.Member, arg string) (models.Member, error) {
	id, err := util.ResolveMemberID(members, arg)
	if err != nil {
		return models.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Member{}, fmt.Errorf("member %q: %w", arg, util.ErrNotFound)
}

// pickMember resolves args[0] when given, otherwise asks interactively.
func pickMember(members []models.Member, args []string, label string) (models.Member, error) {
	if len(args) > 0 {
		return resolveMember(members, args[0])
	}
	if !isInteractive() {
		return models.Member{}, errors.New("a member ID is required when not running in a terminal")
	}
	return selectMemberInteractive(members, label)
}

// selectMemberInteractive presents a prompt to the user to select a member from a list.
func selectMemberInteractive(members []models.Member, label string) (models.Member, error) {
	if len(members) == 0 {
		return models.Member{}, ErrNoMembersFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Name | cyan }} {{ .Gender.Symbol }} {{ if .DOB }}({{ .DOB }}){{ end }}`,
		Inactive: `  {{ .Name | faint }} {{ .Gender.Symbol }} {{ if .DOB }}({{ .DOB }}){{ end }}`,
		Selected: `{{ "✔" | green }} {{ .Name | faint }}`,
		Details: `
--------- Member ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Gender:\t" | faint }} {{ .Gender }}
{{ "Born:\t" | faint }} {{ .DOB }}`,
	}

	searcher := func(input string, index int) bool {
		m := members[index]
		input = strings.ToLower(input)
		return strings.Contains(strings.ToLower(m.Name), input) || strings.HasPrefix(m.ID, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     members,
		Templates: templates,
		Searcher:  searcher,
		Size:      10,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Member{}, err
	}
	return members[i], nil
}

// friendlyMessage turns a command error into the line shown without --verbose.
func friendlyMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrValidation):
		return "Error: " + err.Error()
	case errors.Is(err, util.ErrAmbiguousID):
		return "Error: that ID prefix matches more than one member. Type more characters."
	case errors.Is(err, util.ErrNotFound), errors.Is(err, store.ErrNotFound):
		return "Error: no member matches that ID."
	case errors.Is(err, ErrNoMembersFound):
		return "No members yet. Add one with: familywing add"
	case errors.Is(err, errConfig):
		return "Error: invalid configuration. Run 'familywing config show' to inspect it."
	default:
		return "Error: " + err.Error()
	}
}

// exitOnInterrupt reports whether err is a user cancel from a prompt.
func exitOnInterrupt(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF)
}
