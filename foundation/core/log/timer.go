// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of one evaluation and logs it when
//              stopped, as a success at the timer's level or as a failure.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial timer

package log

import (
	"time"
)

// Timer measures how long an operation takes
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    Fields{"operation": operation},
	}
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs "<operation> completed" at debug level and returns the elapsed time.
// A stopped timer returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.logDuration(LevelDebug, t.operation+" completed", nil, elapsed, t.fields)
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.logDuration(LevelError, t.operation+" failed", err, elapsed, t.fields)
	}
	return elapsed
}
