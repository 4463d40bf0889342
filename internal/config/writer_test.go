package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/josephgoksu/FamilyWing/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultAppConfig_IsValid(t *testing.T) {
	cfg := DefaultAppConfig()
	assert.NoError(t, validator.New().Struct(cfg))
	assert.Equal(t, "file", cfg.Data.Backend)
	assert.Equal(t, "family_members_v1", cfg.Data.Key)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cfg := DefaultAppConfig()
	cfg.Data.Backend = "sqlite"

	require.NoError(t, WriteConfigFile(fsys, "/proj/.familywing/.familywing.yaml", cfg, false))

	data, err := afero.ReadFile(fsys, "/proj/.familywing/.familywing.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# FamilyWing configuration")

	var got types.AppConfig
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "sqlite", got.Data.Backend)
	assert.Equal(t, "family_members_v1", got.Data.Key)
	assert.Equal(t, "json", got.Export.Format)
}

func TestWriteConfigFile_RefusesOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/c.yaml", []byte("keep"), 0644))

	err := WriteConfigFile(fsys, "/c.yaml", DefaultAppConfig(), false)
	assert.ErrorIs(t, err, ErrConfigExists)

	data, _ := afero.ReadFile(fsys, "/c.yaml")
	assert.Equal(t, "keep", string(data))

	require.NoError(t, WriteConfigFile(fsys, "/c.yaml", DefaultAppConfig(), true))
	data, _ = afero.ReadFile(fsys, "/c.yaml")
	assert.NotEqual(t, "keep", string(data))
}
