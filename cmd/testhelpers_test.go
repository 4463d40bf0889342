package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// testEnv isolates one command test: HOME and the working directory point at
// fresh temp dirs and prompts are disabled.
type testEnv struct {
	t       *testing.T
	dataDir string
	// stdin is fed to the next run.
	stdin string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Chdir(t.TempDir())

	orig := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() {
		isInteractive = orig
		viper.Reset()
		resetFlags(rootCmd)
	})

	return &testEnv{t: t, dataDir: t.TempDir()}
}

// resetFlags restores every flag to its default so state does not leak
// between Execute calls on the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args against the env's data dir.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(e.stdin))
	e.stdin = ""
	rootCmd.SetArgs(append(args, "--data-dir", e.dataDir))

	err := rootCmd.Execute()
	return out.String(), err
}

// mustRun is run that fails the test on error.
func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "output: %s", out)
	return out
}

// addMember adds a member through the CLI and returns its full ID.
func (e *testEnv) addMember(args ...string) string {
	e.t.Helper()
	out := e.mustRun(append([]string{"add", "--json"}, args...)...)
	var m models.Member
	require.NoError(e.t, json.Unmarshal([]byte(out), &m), out)
	return m.ID
}

// members returns the saved collection via export.
func (e *testEnv) members() []models.Member {
	e.t.Helper()
	out := e.mustRun("export")
	var members []models.Member
	require.NoError(e.t, json.Unmarshal([]byte(out), &members), out)
	return members
}
