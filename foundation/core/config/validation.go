// File: validation.go
// Title: Configuration Validation
// Description: Checks a loaded configuration and reports the first problem as
//              a structured error naming the offending field.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-09
// Modified: 2025-02-09
//
// Change History:
// - 2025-02-09 v0.1.0: Initial validation

package config

import (
	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
	"github.com/kevmasajedi/complexible/foundation/core/errors"
	mdwlog "github.com/kevmasajedi/complexible/foundation/core/log"
	"github.com/kevmasajedi/complexible/foundation/utils/mathx"
)

// Validate checks every field and returns the first failure
func (c *Config) Validate() error {
	if err := errors.ValidateRequired(errors.ModuleConfig, "general.name", c.General.Name); err != nil {
		return invalid(err)
	}

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid(errors.ValidationFailed(errors.ModuleConfig, "log.level", c.Log.Level,
			"must be trace, debug, info, warn, error or off"))
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid(errors.ValidationFailed(errors.ModuleConfig, "log.format", c.Log.Format,
			"must be json, text, console or logfmt"))
	}

	if err := errors.ValidateRange(errors.ModuleConfig, "precision.equality_places",
		c.Precision.EqualityPlaces, 0, mathx.MaxEqualityPlaces); err != nil {
		return invalid(err)
	}
	if err := errors.ValidateRange(errors.ModuleConfig, "precision.pretty_places",
		c.Precision.PrettyPlaces, 0, mathx.MaxEqualityPlaces); err != nil {
		return invalid(err)
	}

	return nil
}

// invalid marks a validation failure as a configuration error
func invalid(err error) error {
	return mdwerror.Wrap(err, "invalid configuration").WithCode(mdwerror.CodeInvalidConfig)
}
