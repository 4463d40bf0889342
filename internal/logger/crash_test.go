package logger

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetContext(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	globalContext = &CrashContext{fs: fsys, basePath: "/data"}
	t.Cleanup(func() { globalContext = &CrashContext{fs: afero.NewOsFs()} })
	return fsys
}

func TestCrashHandler_SetContext(t *testing.T) {
	resetContext(t)

	SetBasePath("/tmp/test-familywing")
	SetVersion("1.0.0-test")
	SetCommand("tree", []string{"--search", "ada"})
	SetMemberCount(12)

	log := createCrashLog("boom")
	assert.Equal(t, "1.0.0-test", log.Version)
	assert.Equal(t, "tree", log.Command)
	assert.Equal(t, []string{"--search", "ada"}, log.Args)
	assert.Equal(t, 12, log.MemberCount)
	assert.Equal(t, "boom", log.PanicValue)
	assert.NotEmpty(t, log.StackTrace)
	assert.Equal(t, filepath.Join("/tmp/test-familywing", CrashLogDir), getCrashLogDir())
}

func TestCrashHandler_DefaultBasePath(t *testing.T) {
	resetContext(t)
	SetBasePath("")
	assert.Equal(t, filepath.Join(".familywing", CrashLogDir), getCrashLogDir())
}

func TestCrashHandler_WriteAndList(t *testing.T) {
	fsys := resetContext(t)
	SetCommand("add", nil)

	path, err := writeCrashLog(createCrashLog("nil map write"))
	require.NoError(t, err)

	content, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "FAMILYWING CRASH LOG")
	assert.Contains(t, string(content), "Command:   add")
	assert.Contains(t, string(content), "nil map write")
	assert.NotContains(t, string(content), "Args:")

	logs, err := ListCrashLogs()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, logs)
}

func TestCrashHandler_KeepsAtMostMaxLogs(t *testing.T) {
	fsys := resetContext(t)
	dir := getCrashLogDir()
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < MaxCrashLogs+3; i++ {
		name := fmt.Sprintf("crash_%s.log", base.Add(time.Duration(i)*time.Second).Format("20060102_150405"))
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	_, err := writeCrashLog(CrashLog{Timestamp: base.Add(time.Hour)})
	require.NoError(t, err)

	logs, err := ListCrashLogs()
	require.NoError(t, err)
	assert.Len(t, logs, MaxCrashLogs)
	assert.Contains(t, logs[len(logs)-1], "crash_20240101_010000.log")

	exists, _ := afero.Exists(fsys, filepath.Join(dir, "notes.txt"))
	assert.True(t, exists)
}

func TestListCrashLogs_MissingDir(t *testing.T) {
	resetContext(t)
	logs, err := ListCrashLogs()
	assert.NoError(t, err)
	assert.Nil(t, logs)
}

func TestPrintCrashBanner(t *testing.T) {
	var buf bytes.Buffer
	printCrashBanner(&buf, "/data/crash_logs/crash_x.log")
	assert.Contains(t, buf.String(), "FamilyWing encountered an unexpected error")
	assert.Contains(t, buf.String(), "/data/crash_logs/crash_x.log")
}

func TestSetup_LevelFollowsVerbose(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, false)
	slog.Info("hidden")
	slog.Warn("shown", "key", "k")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=k")

	buf.Reset()
	Setup(&buf, true)
	slog.Debug("debugging")
	assert.Contains(t, buf.String(), "debugging")
}
