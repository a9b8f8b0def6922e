// Package errors builds the structured errors used across complexible.
//
// Package: errors
// Title: Standard Error Construction
// Description: Every error carries the module and operation that raised it
//              in its details, and a code from the core error package. The
//              command line maps that code to an exit status.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation
//
// Usage:
//
//	if err := errors.ValidateRange(errors.ModuleConfig, "equality_places", n, 0, 15); err != nil {
//		return err
//	}
//
//	return errors.InvalidInput(errors.ModuleCLI, "parse", arg, "a decimal number")
package errors
