// File: config.go
// Title: Configuration Loading
// Description: Typed configuration for the complexible tools, read from TOML
//              or YAML files. Values missing from a file keep their defaults,
//              and environment variables override both.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial typed configuration with TOML and YAML support

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
	"github.com/kevmasajedi/complexible/foundation/core/errors"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses "toml", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatTOML, errors.InvalidFormat(errors.ModuleConfig, s, "toml or yaml")
	}
}

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Log       LogConfig       `toml:"log" yaml:"log"`
	Precision PrecisionConfig `toml:"precision" yaml:"precision"`

	// path is the file the configuration was read from, empty for defaults
	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name string `toml:"name" yaml:"name"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Caller bool   `toml:"caller" yaml:"caller"`
}

// PrecisionConfig holds numeric display and comparison settings
type PrecisionConfig struct {
	// EqualityPlaces is the number of decimal places compared by equal
	EqualityPlaces int `toml:"equality_places" yaml:"equality_places"`

	// PrettyPlaces is the number of decimal places in pretty output
	PrettyPlaces int `toml:"pretty_places" yaml:"pretty_places"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		Precision: PrecisionConfig{
			EqualityPlaces: mathx.EqualityPlaces,
			PrettyPlaces:   mathx.DefaultPrettyPlaces,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Path returns the file the configuration was loaded from
func (c *Config) Path() string {
	return c.path
}

// Load reads a configuration file, choosing the format by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.ModuleConfig, "load", path).
				WithCode(mdwerror.CodeMissingConfig)
		}
		return nil, errors.OperationFailed(errors.ModuleConfig, "load", err).
			WithDetail("path", path)
	}

	cfg, err := parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot load "+path).WithDetail("path", path)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromString parses configuration text in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	return parse([]byte(content), format)
}

// LoadFromEnv loads the file named by COMPLEXIBLE_CONFIG, or the first file
// found by discovery, then applies environment overrides and validates.
// Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfig)
	if path == "" {
		path, _ = FindConfigFile(DefaultDiscoveryOptions())
	}

	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the configuration in the given format
func (c *Config) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return errors.OperationFailed(errors.ModuleConfig, "encode", err)
		}
		return enc.Close()
	default:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return errors.OperationFailed(errors.ModuleConfig, "encode", err)
		}
		return nil
	}
}

// String renders the configuration as TOML
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatTOML); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// parse decodes content on top of the defaults so absent keys keep them
func parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("parse").
				Message("YAML parse error").
				Cause(err).
				Code(mdwerror.CodeInvalidConfig).
				Build()
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("parse").
				Message("TOML parse error").
				Cause(err).
				Code(mdwerror.CodeInvalidConfig).
				Build()
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "complexible"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
