package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/FamilyWing/internal/config"
	"github.com/josephgoksu/FamilyWing/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// errConfig marks configuration failures.
var errConfig = errors.New("configuration error")

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	return validate.Struct(cfg)
}

// flagBindings maps viper keys to persistent flags.
var flagBindings = map[string]string{
	"config":       "config",
	"verbose":      "verbose",
	"json":         "json",
	"quiet":        "quiet",
	"data.dir":     "data-dir",
	"data.backend": "backend",
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() error {
	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	for key, flag := range flagBindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("%w: bind flag %s: %v", errConfig, flag, err)
		}
	}

	// Environment handling must be set up before reading the config file.
	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., FAMILYWING_DATA_BACKEND
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // data.backend -> DATA_BACKEND
	viper.AutomaticEnv()

	cfgFileFlag := viper.GetString("config")
	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if dir, ok := config.ProjectDataDir(); ok {
			// Project-specific config: <project>/.familywing/.familywing.yaml
			viper.AddConfigPath(dir)
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgFileFlag != "" && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)):
			return fmt.Errorf("%w: specified config file not found: %s", errConfig, cfgFileFlag)
		case errors.As(err, &notFound):
			if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		default:
			return fmt.Errorf("%w: reading %s: %v", errConfig, viper.ConfigFileUsed(), err)
		}
	}

	defaults := config.DefaultAppConfig()
	viper.SetDefault("data.backend", defaults.Data.Backend)
	viper.SetDefault("data.key", defaults.Data.Key)
	viper.SetDefault("export.format", defaults.Export.Format)

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", errConfig, err)
	}

	// The data dir depends on the working directory and XDG, so it is
	// resolved after unmarshal rather than given a static default.
	if GlobalAppConfig.Data.Dir == "" {
		GlobalAppConfig.Data.Dir = config.GetDataDir()
	}
	GlobalAppConfig.Data.Backend = strings.ToLower(GlobalAppConfig.Data.Backend)
	GlobalAppConfig.Export.Format = strings.ToLower(GlobalAppConfig.Export.Format)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		return fmt.Errorf("%w: %v", errConfig, err)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
