/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose" yaml:"verbose"`
	Config  string       `mapstructure:"config" yaml:"-"`
	Data    DataConfig   `mapstructure:"data" yaml:"data" validate:"required"`
	Export  ExportConfig `mapstructure:"export" yaml:"export"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// Dir is where the slot lives. Empty means resolve via config.GetDataDir.
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Backend string `mapstructure:"backend" yaml:"backend" validate:"required,oneof=file sqlite badger"`
	Key     string `mapstructure:"key" yaml:"key" validate:"required,excludesall=/"`
}

// ExportConfig holds export defaults
type ExportConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=json yaml toml"`
}
