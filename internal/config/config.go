package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/propsload/internal/platform"
)

const (
	defaultLocatorFile = "../config/config.properties"
	defaultFormat      = FormatJSON
	defaultLogLevel    = "info"
)

// Output formats accepted for rendering a loaded tree.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	PropertiesFile string `yaml:"properties_file"`
	LocatorFile    string `yaml:"locator_file"`
	Platform       string `yaml:"platform"`
	Format         string `yaml:"format"`
	LogLevel       string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	PropertiesFile *string
	LocatorFile    *string
	Platform       *string
	Format         *string
	LogLevel       *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyFileConfig(&cfg, fileCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		LocatorFile: defaultLocatorFile,
		Format:      defaultFormat,
		LogLevel:    defaultLogLevel,
	}
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fileCfg, nil
}

// applyFileConfig copies every non-empty setting from the YAML file.
func applyFileConfig(cfg *Config, fileCfg *Config) {
	setIfNotEmpty(&cfg.PropertiesFile, fileCfg.PropertiesFile)
	setIfNotEmpty(&cfg.LocatorFile, fileCfg.LocatorFile)
	setIfNotEmpty(&cfg.Platform, fileCfg.Platform)
	setIfNotEmpty(&cfg.Format, fileCfg.Format)
	setIfNotEmpty(&cfg.LogLevel, fileCfg.LogLevel)
}

func applyEnvConfig(cfg *Config) {
	setIfNotEmpty(&cfg.PropertiesFile, os.Getenv("PROPS_FILE"))
	setIfNotEmpty(&cfg.LocatorFile, os.Getenv("PROPS_LOCATOR"))
	setIfNotEmpty(&cfg.Platform, os.Getenv("PROPS_PLATFORM"))
	setIfNotEmpty(&cfg.Format, os.Getenv("PROPS_FORMAT"))
	setIfNotEmpty(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	for dst, src := range map[*string]*string{
		&cfg.PropertiesFile: overrides.PropertiesFile,
		&cfg.LocatorFile:    overrides.LocatorFile,
		&cfg.Platform:       overrides.Platform,
		&cfg.Format:         overrides.Format,
		&cfg.LogLevel:       overrides.LogLevel,
	} {
		if src != nil {
			setIfNotEmpty(dst, *src)
		}
	}
}

func validateConfig(cfg Config) error {
	switch cfg.Format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return fmt.Errorf("unsupported format %q", cfg.Format)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Platform != "" {
		if _, err := platform.Parse(cfg.Platform); err != nil {
			return fmt.Errorf("invalid platform: %w", err)
		}
	}
	return nil
}

func setIfNotEmpty(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
