// File: env.go
// Title: Environment Overrides
// Description: Environment variables that select the configuration file and
//              override individual settings.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial environment overrides

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/kevmasajedi/complexible/foundation/core/errors"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfig         = "COMPLEXIBLE_CONFIG"
	EnvLogLevel       = "COMPLEXIBLE_LOG_LEVEL"
	EnvLogFormat      = "COMPLEXIBLE_LOG_FORMAT"
	EnvEqualityPlaces = "COMPLEXIBLE_EQUALITY_PLACES"
	EnvPrettyPlaces   = "COMPLEXIBLE_PRETTY_PLACES"
)

// ApplyEnv overrides settings from the environment.
// Unset or empty variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if v := lookup(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := lookup(EnvLogFormat); v != "" {
		c.Log.Format = v
	}

	if err := envInt(EnvEqualityPlaces, &c.Precision.EqualityPlaces); err != nil {
		return err
	}
	return envInt(EnvPrettyPlaces, &c.Precision.PrettyPlaces)
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envInt(key string, dst *int) error {
	v := lookup(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.InvalidInput(errors.ModuleConfig, "env", v, "an integer in "+key)
	}
	*dst = n
	return nil
}
