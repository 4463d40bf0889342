// Package config provides centralized configuration constants and paths for FamilyWing.
// All default values should be defined here to ensure a single source of truth.
package config

const (
	// DirName is the per-project and per-user directory name.
	DirName = ".familywing"

	// ConfigName is the config file base name searched by viper.
	ConfigName = ".familywing"

	// EnvPrefix prefixes environment overrides, e.g. FAMILYWING_DATA_BACKEND.
	EnvPrefix = "FAMILYWING"
)

// Storage defaults
const (
	// DefaultBackend is the slot backend used when none is configured.
	DefaultBackend = "file"

	// DefaultKey is the slot key the member collection is saved under.
	DefaultKey = "family_members_v1"
)

// DefaultExportFormat is the format used by export without --format.
const DefaultExportFormat = "json"
