package config

import (
	"os"
	"path/filepath"

	"github.com/josephgoksu/FamilyWing/internal/project"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.familywing).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// ProjectDataDir returns the nearest .familywing directory at or above the
// working directory, stopping at a git repository root. The home directory's
// .familywing is not a project.
func ProjectDataDir() (string, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	home, _ := os.UserHomeDir()

	ctx, err := project.NewDetector(afero.NewOsFs(), DirName, home).Detect(cwd)
	if err != nil {
		return "", false
	}
	return ctx.DataDir, true
}

// GetDataDir returns the directory holding the member slot.
// Resolution order (first match wins):
// 1. Explicit config via "data.dir" (Viper/env/flag)
// 2. Project directory: the nearest .familywing (see ProjectDataDir)
// 3. XDG_DATA_HOME/familywing (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.familywing
func GetDataDir() string {
	if path := viper.GetString("data.dir"); path != "" {
		return path
	}

	if dir, ok := ProjectDataDir(); ok {
		return dir
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "familywing")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return DirName
	}
	return dir
}
