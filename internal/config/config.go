// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	once sync.Once
	// Logger is the global logger instance shared across the application
	Logger = logrus.New()
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter"`
	} `mapstructure:"csv"`

	Output struct {
		Directory string `mapstructure:"directory"`
	} `mapstructure:"output"`

	Concil struct {
		Folder        string `mapstructure:"folder"`
		DebtPattern   string `mapstructure:"debt_pattern"`
		CreditPattern string `mapstructure:"credit_pattern"`
	} `mapstructure:"concil"`

	Watch struct {
		Directory   string `mapstructure:"directory"`
		TargetFile  string `mapstructure:"target_file"`
		Destination string `mapstructure:"destination"`
		TimeoutSecs int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"watch"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then a config.yaml, then COLDVIEW_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.coldview-b1")
	v.AddConfigPath(".coldview-b1")
	v.AddConfigPath(".")

	v.SetEnvPrefix("COLDVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file should not stop a scheduled run;
			// defaults and environment variables still apply.
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("output.directory", "")

	v.SetDefault("concil.folder", "./accounting_files")
	v.SetDefault("concil.debt_pattern", "M2D-RECU*.csv")
	v.SetDefault("concil.credit_pattern", "M6D-DEV*.csv")

	v.SetDefault("watch.directory", "")
	v.SetDefault("watch.target_file", "reporte.txt")
	v.SetDefault("watch.destination", "")
	v.SetDefault("watch.timeout_seconds", 300)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}
	if config.Watch.TimeoutSecs < 0 {
		return fmt.Errorf("watch.timeout_seconds must not be negative, got: %d", config.Watch.TimeoutSecs)
	}
	return nil
}

// ConfigureLogging sets up the global logger from a Config and returns it.
func ConfigureLogging(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return Logger
}

// LoadEnv loads environment variables from a .env file if one exists in
// the working directory or the project root.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debugf("Loaded environment variables from %s", envFile)
	})
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
