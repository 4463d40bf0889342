package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/FamilyWing/types"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned by WriteConfigFile when the target exists and force is off.
var ErrConfigExists = errors.New("config file already exists")

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() types.AppConfig {
	return types.AppConfig{
		Data: types.DataConfig{
			Backend: DefaultBackend,
			Key:     DefaultKey,
		},
		Export: types.ExportConfig{Format: DefaultExportFormat},
	}
}

// MarshalConfig renders cfg as the YAML written to config files.
func MarshalConfig(cfg types.AppConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append([]byte("# FamilyWing configuration\n"), body...), nil
}

// WriteConfigFile writes cfg to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteConfigFile(fsys afero.Fs, path string, cfg types.AppConfig, force bool) error {
	if !force {
		if _, err := fsys.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	data, err := MarshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return afero.WriteFile(fsys, path, data, 0644)
}
