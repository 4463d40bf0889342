package project

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFS creates an in-memory filesystem with the given directories.
func setupFS(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0755), "failed to create dir: %s", dir)
	}
	return fs
}

func TestDetect_InStartDir(t *testing.T) {
	fs := setupFS(t, "/research/.familywing")

	ctx, err := NewDetector(fs, ".familywing", "").Detect("/research")
	require.NoError(t, err)

	assert.Equal(t, "/research", ctx.RootPath)
	assert.Equal(t, "/research/.familywing", ctx.DataDir)
}

func TestDetect_BubblesUpFromSubdir(t *testing.T) {
	fs := setupFS(t, "/research/.familywing", "/research/scans/1890")

	ctx, err := NewDetector(fs, ".familywing", "").Detect("/research/scans/1890")
	require.NoError(t, err)
	assert.Equal(t, "/research", ctx.RootPath)
}

func TestDetect_NearestWins(t *testing.T) {
	fs := setupFS(t, "/outer/.familywing", "/outer/inner/.familywing", "/outer/inner/deep")

	ctx, err := NewDetector(fs, ".familywing", "").Detect("/outer/inner/deep")
	require.NoError(t, err)
	assert.Equal(t, "/outer/inner", ctx.RootPath)
}

func TestDetect_StopsAtGitRoot(t *testing.T) {
	// The family above the repository belongs to someone else.
	fs := setupFS(t, "/work/.familywing", "/work/repo/.git", "/work/repo/src")

	_, err := NewDetector(fs, ".familywing", "").Detect("/work/repo/src")
	assert.ErrorIs(t, err, ErrNoProjectFound)
}

func TestDetect_MarkerBesideGitDir(t *testing.T) {
	fs := setupFS(t, "/repo/.git", "/repo/.familywing", "/repo/docs")

	ctx, err := NewDetector(fs, ".familywing", "").Detect("/repo/docs")
	require.NoError(t, err)
	assert.Equal(t, "/repo", ctx.RootPath)
}

func TestDetect_SkipsHome(t *testing.T) {
	fs := setupFS(t, "/home/ada/.familywing", "/home/ada/notes")

	_, err := NewDetector(fs, ".familywing", "/home/ada").Detect("/home/ada/notes")
	assert.ErrorIs(t, err, ErrNoProjectFound)
}

func TestDetect_NoMarkersFound(t *testing.T) {
	fs := setupFS(t, "/empty/dir")

	_, err := NewDetector(fs, ".familywing", "").Detect("/empty/dir")
	assert.ErrorIs(t, err, ErrNoProjectFound)
}

func TestDetect_MarkerFileIsIgnored(t *testing.T) {
	fs := setupFS(t, "/odd")
	require.NoError(t, afero.WriteFile(fs, "/odd/.familywing", []byte("x"), 0644))

	_, err := NewDetector(fs, ".familywing", "").Detect("/odd")
	assert.ErrorIs(t, err, ErrNoProjectFound)
}
