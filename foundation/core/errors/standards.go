// File: standards.go
// Title: Module Error Standards
// Description: Module names used by complexible and the default error code for
//              each of them. Errors raised without an explicit code get the
//              default of their module.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial module table and lookups

package errors

import (
	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
)

// Module names reported in the "module" detail of every error
const (
	ModuleMathx   = "mathx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
	ModuleLogging = "logging"
)

// moduleCodes maps a module to the code used when none is given
var moduleCodes = map[string]mdwerror.Code{
	ModuleMathx:   mdwerror.CodeInvalidOperation,
	ModuleConfig:  mdwerror.CodeConfigError,
	ModuleCLI:     mdwerror.CodeInvalidInput,
	ModuleLogging: mdwerror.CodeConfigError,
}

// defaultCode returns the fallback code for a module
func defaultCode(module string) mdwerror.Code {
	if code, ok := moduleCodes[module]; ok {
		return code
	}
	return mdwerror.CodeUnknown
}

// IsModuleError checks whether err was raised by the given module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}
