package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Supported output formats
var formats = []string{"table", "json", "yaml", "dump"}

// Config represents the annotate CLI configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`

	// File is the config file that was read, empty when defaults were used
	File string `mapstructure:"-"`
}

// OutputConfig controls how introspection results are rendered
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LogConfig controls registry logging
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// Load loads the configuration from annotate.yml or annotate.yaml in the
// working directory
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom loads the configuration from dir. Environment variables prefixed
// with ANNOTATE_ (e.g. ANNOTATE_OUTPUT_FORMAT) override the file.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output.format", "table")
	v.SetDefault("output.no_color", false)
	v.SetDefault("log.verbose", false)

	v.SetConfigName("annotate")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("ANNOTATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = v.ConfigFileUsed()

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidFormat reports whether format is a supported output format
func ValidFormat(format string) bool {
	for _, f := range formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if !ValidFormat(cfg.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got: %s",
			strings.Join(formats, ", "), cfg.Output.Format)
	}
	return nil
}
