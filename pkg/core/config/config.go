// ============================================================================
// textkit - Text Cleaning Toolkit
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for the textkit command line tool
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
)

// EnvVar names the environment variable holding the config path
const EnvVar = "TEXTKIT_CONFIG"

// Strip policies
const (
	PolicyBroad  = "broad"
	PolicyStrict = "strict"
)

// Config holds the complete textkit configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Strip   StripConfig   `toml:"strip" yaml:"strip"`
	Hex     HexConfig     `toml:"hex" yaml:"hex"`
	Bytes   BytesConfig   `toml:"bytes" yaml:"bytes"`
	Lines   LinesConfig   `toml:"lines" yaml:"lines"`
	Match   MatchConfig   `toml:"match" yaml:"match"`
	Anchor  AnchorConfig  `toml:"anchor" yaml:"anchor"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// StripConfig controls the strip and trim commands
type StripConfig struct {
	Keep   string `toml:"keep" yaml:"keep"`
	Policy string `toml:"policy" yaml:"policy"`
}

// HexConfig controls hex dumps
type HexConfig struct {
	Separator string `toml:"separator" yaml:"separator"`
	LineWidth int    `toml:"line_width" yaml:"line_width"`
}

// BytesConfig controls size rendering
type BytesConfig struct {
	Scale int  `toml:"scale" yaml:"scale"`
	SI    bool `toml:"si" yaml:"si"`
}

// LinesConfig controls continuation merging
type LinesConfig struct {
	KeepTrailing bool `toml:"keep_trailing" yaml:"keep_trailing"`
}

// MatchConfig bounds the quadratic substring matcher. Zero disables the
// limit.
type MatchConfig struct {
	MaxInputRunes int `toml:"max_input_runes" yaml:"max_input_runes"`
}

// AnchorConfig controls anchor filtering
type AnchorConfig struct {
	Deduplicate bool `toml:"deduplicate" yaml:"deduplicate"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		General: GeneralConfig{LogLevel: "info", LogFormat: "text"},
		Strip:   StripConfig{Policy: PolicyBroad},
		Hex:     HexConfig{Separator: " ", LineWidth: 16},
		Bytes:   BytesConfig{Scale: 2},
		Match:   MatchConfig{MaxInputRunes: 4096},
		Anchor:  AnchorConfig{Deduplicate: true},
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("config file not found: %s", path).
			Code(mdwerror.CodeMissingConfig).
			Detail("path", path).
			Build()
	}
	if err != nil {
		return nil, mdwerrors.IOFailed(mdwerrors.ModuleConfig, "load", err)
	}

	cfg := Default()
	switch format := detectFormat(path); format {
	case "toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleConfig, path, "a .toml, .yaml or .yml file")
	}
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Message("failed to parse config").
			Cause(err).
			Code(mdwerror.CodeConfigError).
			Detail("path", path).
			Build()
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the files probed when no path is configured
func DefaultPaths() []string {
	return []string{
		"./configs/textkit.toml",
		"./textkit.toml",
		"./textkit.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/textkit/config.toml"),
	}
}

// LoadFromEnv loads configuration from the TEXTKIT_CONFIG environment
// variable or the first existing default path.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("load").
			Messagef("no config file found, set %s or create configs/textkit.toml", EnvVar).
			Code(mdwerror.CodeMissingConfig).
			Build()
	}

	return Load(path)
}

// LoadOrDefault loads path when given. Otherwise it behaves like
// LoadFromEnv but falls back to Default when no file exists.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := LoadFromEnv()
	if err != nil && os.Getenv(EnvVar) == "" && mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return Default(), nil
	}
	return cfg, err
}

// detectFormat picks the decoder by file extension
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// applyDefaults fills settings a file set to empty values
func (c *Config) applyDefaults() {
	c.General.LogLevel = strings.ToLower(c.General.LogLevel)
	c.General.LogFormat = strings.ToLower(c.General.LogFormat)
	c.Strip.Policy = strings.ToLower(c.Strip.Policy)

	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Strip.Policy == "" {
		c.Strip.Policy = PolicyBroad
	}
}

// Validate rejects unknown enumerations and negative limits
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("validate").
			Messagef("invalid %s %v: %s", key, value, reason).
			Code(mdwerror.CodeInvalidConfig).
			Detail("key", key).
			Detail("value", value).
			Build()
	}

	switch c.General.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return invalid("general.log_level", c.General.LogLevel, "want trace, debug, info, warn, error or fatal")
	}
	switch c.General.LogFormat {
	case "json", "text":
	default:
		return invalid("general.log_format", c.General.LogFormat, "want json or text")
	}
	switch c.Strip.Policy {
	case PolicyBroad, PolicyStrict:
	default:
		return invalid("strip.policy", c.Strip.Policy, "want broad or strict")
	}
	if c.Hex.LineWidth < 0 {
		return invalid("hex.line_width", c.Hex.LineWidth, "must not be negative")
	}
	if c.Bytes.Scale < 0 {
		return invalid("bytes.scale", c.Bytes.Scale, "must not be negative")
	}
	if c.Match.MaxInputRunes < 0 {
		return invalid("match.max_input_runes", c.Match.MaxInputRunes, "must not be negative")
	}
	return nil
}
