// Package log provides structured logging for the complexible tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Every command invocation carries a correlation
//              ID, and structured errors are logged at a level chosen from
//              their severity.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "complexible",
//	}).WithCorrelationID(id)
//
//	logger.Debug("parsed operand", log.Fields{"re": 3.0, "im": 4.0})
//
//	timer := logger.StartTimer("mul")
//	result := a.Mul(b)
//	timer.Stop()
//
//	logger.LogError(err)
//
// Loggers are safe for concurrent use. The With* methods return copies.
package log
