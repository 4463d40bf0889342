package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/FamilyWing/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "[]\n", env.mustRun("export"))
}

func TestExport_PrettyJSON(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada")

	out := env.mustRun("export")
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"id\": "), out)
	assert.Contains(t, out, `"name": "Ada"`)
	assert.Contains(t, out, `"fatherId": ""`)
}

func TestExport_YAMLAndFile(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada", "--gender", "female")

	out := env.mustRun("export", "--format", "yaml")
	assert.Contains(t, out, "name: Ada")
	assert.Contains(t, out, "gender: Female")

	path := filepath.Join(t.TempDir(), "family.json")
	out = env.mustRun("export", "--output", path)
	assert.Contains(t, out, "Exported 1 member(s)")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Ada"`)
}

func TestExport_Clipboard(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada")

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	out := env.mustRun("export", "--clipboard")
	assert.Equal(t, "JSON copied to clipboard\n", out)
	assert.Contains(t, copied, `"name": "Ada"`)
}

func TestExport_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("export", "--format", "xml")
	assert.Error(t, err)
}

func TestImport_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	dad := env.addMember("--name", "Dad", "--gender", "male")
	env.addMember("--name", "Kid", "--father", dad)
	before := env.members()

	path := filepath.Join(t.TempDir(), "family.json")
	env.mustRun("export", "--output", path)
	env.mustRun("add", "--name", "Extra")

	out := env.mustRun("import", path, "--yes")
	assert.Contains(t, out, "Imported successfully (2 member(s))")
	assert.Equal(t, before, env.members())
}

func TestImport_NonArrayLeavesStateUntouched(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada")
	before := env.members()

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"1","name":"Solo"}`), 0o644))

	_, err := env.run("import", path, "--yes")
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.ErrorContains(t, err, "expected array")
	assert.Equal(t, before, env.members())
}

func TestImport_BadPayloadFailsBeforeConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":`), 0o644))

	out, err := env.run("import", path)
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.NotContains(t, out, "Re-run with --yes")
	assert.Len(t, env.members(), 1)
}

func TestImport_FromStdinAndClipboard(t *testing.T) {
	env := newTestEnv(t)

	env.stdin = `[{"id":"1","name":"Stdin"}]`
	assert.Contains(t, env.mustRun("import", "-"), "Imported successfully (1 member(s))")

	orig := readClipboard
	readClipboard = func() (string, error) { return `[{"id":"2","name":"Clip"},{"id":"3","name":"Board","fatherId":"2"}]`, nil }
	t.Cleanup(func() { readClipboard = orig })

	env.mustRun("import", "--clipboard", "--yes")
	members := env.members()
	require.Len(t, members, 2)
	assert.Equal(t, "Clip", members[0].Name)
	assert.Equal(t, "2", members[1].FatherID)
}

func TestImport_NeedsSource(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("import")
	assert.Error(t, err)

	_, err = env.run("import", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "file not found")
}

func TestImport_ExistingMembersNeedConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.addMember("--name", "Ada")

	path := filepath.Join(t.TempDir(), "family.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	out := env.mustRun("import", path)
	assert.Contains(t, out, "Re-run with --yes")
	assert.Len(t, env.members(), 1)
}
