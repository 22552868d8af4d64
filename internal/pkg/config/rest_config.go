package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings for the keypost REST store service.
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
}

// InitializeRestConfig loads the REST service configuration from a YAML file
// and KEYPOST_-prefixed environment variables. Environment variables take
// precedence over file values.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rest-app")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("KEYPOST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)

	if err := v.ReadInConfig(); err != nil {
		// Viper signals a miss differently per flow: the search-path flow
		// yields ConfigFileNotFoundError, an explicit file a bare fs error.
		_, searchMiss := err.(viper.ConfigFileNotFoundError)
		if !searchMiss && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Logger.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Database.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
