// Package error provides structured errors for the complexible tools.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors carry a code, a severity, key-value details and the
//              operation that failed. Codes map to exit statuses for the CLI and
//              severities map to log levels.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	err := error.New("operand is not a number").
//		WithCode(error.CodeInvalidInput).
//		WithDetail("operand", "abc").
//		WithOperation("parse")
//
//	wrapped := error.Wrap(err, "cannot evaluate add")
//
//	if error.HasCode(wrapped, error.CodeInvalidInput) {
//		os.Exit(error.GetCode(wrapped).ExitCode())
//	}
package error
