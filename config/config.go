package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/inodefs/internal/util"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CLI verbosity values accepted by [ConfigOverride.LogLvl]
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl = util.WarnLevel

	// DefaultPrompt matches the prompt of a freshly started shell
	DefaultPrompt = "% "

	// DefaultMaxNameLen mirrors NAME_MAX on common unix filesystems
	DefaultMaxNameLen = 255

	DefaultColor = true
)

// Config contains runtime configuration values for the filesystem and shell.
type Config struct {
	LogLvl     util.LogLevel // Internal log level (Default warn)
	Prompt     string        // Initial shell prompt (Default "% ")
	MaxNameLen int           // Maximum bytes in a single path component; <= 0 disables the check (Default 255)
	Color      bool          // Whether shell diagnostics are colored (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace)
	LogLvl     *int    `yaml:"verbose,omitempty" json:"verbose,omitempty" toml:"verbose,omitempty"`
	Prompt     *string `yaml:"prompt,omitempty" json:"prompt,omitempty" toml:"prompt,omitempty"`
	MaxNameLen *int    `yaml:"max_name_len,omitempty" json:"max_name_len,omitempty" toml:"max_name_len,omitempty"`
	Color      *bool   `yaml:"color,omitempty" json:"color,omitempty" toml:"color,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:     DefaultLogLvl,
		Prompt:     DefaultPrompt,
		MaxNameLen: DefaultMaxNameLen,
		Color:      DefaultColor,
	}
}

// NewConfig creates a Config from defaults with override applied; override may be nil
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.MaxNameLen != nil {
		c.MaxNameLen = *override.MaxNameLen
	}
	if override.Color != nil {
		c.Color = *override.Color
	}
}

// VerbosityToLogLevel converts a CLI verbosity, clamped to 1..5, into a log level
func VerbosityToLogLevel(verbose int) util.LogLevel {
	verbose = min(max(verbose, ErrorVerbose), TraceVerbose)
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports YAML (.yaml, .yml), JSON (.json) and TOML (.toml) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &override)
	case ".json":
		err = json.Unmarshal(data, &override)
	case ".toml":
		err = toml.Unmarshal(data, &override)
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
