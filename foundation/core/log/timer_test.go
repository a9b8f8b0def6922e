// File: timer_test.go
// Title: Timer Tests
// Description: Tests for timing and logging of operations.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"errors"
	"testing"
)

func TestTimerStop(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelDebug)

	timer := logger.StartTimer("pow").WithField("n", 3)
	timer.Stop()
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["message"] != "pow completed" || line["level"] != "debug" {
		t.Errorf("line = %v", line)
	}
	if line["operation"] != "pow" || line["n"] != 3.0 {
		t.Errorf("fields missing in %v", line)
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelDebug)

	logger.StartTimer("div").StopWithError(errors.New("non-finite"))

	line := decodeLines(t, &buf)[0]
	if line["message"] != "div failed" || line["level"] != "error" || line["error"] != "non-finite" {
		t.Errorf("line = %v", line)
	}
}

func TestTimerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)

	logger.StartTimer("add").Stop()
	if buf.Len() != 0 {
		t.Errorf("debug timer logged at info level: %q", buf.String())
	}
}

func TestTimerNilLogger(t *testing.T) {
	timer := NewTimer(nil, "noop")
	if d := timer.StopWithError(errors.New("x")); d < 0 {
		t.Errorf("StopWithError() = %v, want >= 0", d)
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("Stop() after StopWithError() = %v, want 0", d)
	}
}
