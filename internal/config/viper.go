// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/salary-sif/internal/logging"
	"fjacquet/salary-sif/internal/models"
)

// EnvPrefix prefixes every environment variable override, e.g. SIF_EMPLOYER_ID.
const EnvPrefix = "SIF"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Employer struct {
		ID        string `mapstructure:"id" yaml:"id"`
		Routing   string `mapstructure:"routing" yaml:"routing"`
		Currency  string `mapstructure:"currency" yaml:"currency"`
		Reference string `mapstructure:"reference" yaml:"reference"`
	} `mapstructure:"employer" yaml:"employer"`

	Clock struct {
		Timezone string `mapstructure:"timezone" yaml:"timezone"`
	} `mapstructure:"clock" yaml:"clock"`

	Ledger struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"ledger" yaml:"ledger"`

	Input struct {
		DefaultFile string `mapstructure:"default_file" yaml:"default_file"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Extension string `mapstructure:"extension" yaml:"extension"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom is InitializeConfig with an explicit config file.
// An empty path searches the standard locations.
func InitializeConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.salary-sif")
		v.AddConfigPath(".salary-sif")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Employer defaults
	v.SetDefault("employer.id", "0000002571863")
	v.SetDefault("employer.routing", "203320101")
	v.SetDefault("employer.currency", "AED")
	v.SetDefault("employer.reference", "0000002571863")

	v.SetDefault("clock.timezone", "Asia/Dubai")
	v.SetDefault("ledger.file", "sif_history.yaml")
	v.SetDefault("input.default_file", "employees.xlsx")
	v.SetDefault("output.extension", ".sif")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Employer.ID == "" || strings.ContainsAny(config.Employer.ID, ", \t") {
		return fmt.Errorf("employer.id must be non-empty without commas or spaces, got: %q", config.Employer.ID)
	}
	if config.Employer.Routing == "" || strings.ContainsAny(config.Employer.Routing, ", \t") {
		return fmt.Errorf("employer.routing must be non-empty without commas or spaces, got: %q", config.Employer.Routing)
	}
	if len(config.Employer.Currency) != 3 || strings.ToUpper(config.Employer.Currency) != config.Employer.Currency {
		return fmt.Errorf("employer.currency must be a 3-letter upper-case code, got: %q", config.Employer.Currency)
	}
	if strings.Contains(config.Employer.Reference, ",") {
		return fmt.Errorf("employer.reference must not contain commas, got: %q", config.Employer.Reference)
	}

	if config.Ledger.File == "" {
		return fmt.Errorf("ledger.file must not be empty")
	}
	if config.Output.Extension == "" {
		return fmt.Errorf("output.extension must not be empty")
	}

	return nil
}

// EmployerIdentity returns the immutable employer identity built from the employer section.
func (c *Config) EmployerIdentity() models.Employer {
	return models.Employer{
		ID:        c.Employer.ID,
		Routing:   c.Employer.Routing,
		Currency:  c.Employer.Currency,
		Reference: c.Employer.Reference,
	}
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
