// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger construction, copies made by the With*
//              methods, level filtering and severity-aware error logging.
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
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
)

func jsonLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelError, Format: FormatText, Output: &buf, Name: "calc"})

	if logger.level != LevelError {
		t.Errorf("level = %v, want %v", logger.level, LevelError)
	}
	if logger.name != "calc" {
		t.Errorf("name = %q, want calc", logger.name)
	}
	if logger.output != &buf {
		t.Error("output not set")
	}
	if NewWithConfig(Config{}).output == nil {
		t.Error("nil output should default to stderr")
	}
}

func TestLoggerWithMethodsCopy(t *testing.T) {
	logger := NewWithConfig(Config{Level: LevelWarn})

	withField := logger.WithField("op", "add")
	if _, ok := logger.contextFields["op"]; ok {
		t.Error("WithField() modified the original")
	}
	if withField.contextFields["op"] != "add" {
		t.Error("WithField() did not set the field")
	}

	correlated := logger.WithCorrelationID("id")
	if logger.correlationID != "" {
		t.Error("WithCorrelationID() modified the original")
	}
	if correlated.correlationID != "id" || correlated.level != LevelWarn {
		t.Errorf("correlated = (%q, %v), want (id, warn)", correlated.correlationID, correlated.level)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)

	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []string{"info", "warn", "error"} {
		if lines[i]["level"] != want {
			t.Errorf("line %d level = %v, want %s", i, lines[i]["level"], want)
		}
	}
}

func TestLoggerOff(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelOff)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff logger wrote %q", buf.String())
	}

	Discard().Error("nothing")
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelDebug).
		WithField("command", "mul").
		WithCorrelationID("abc")

	logger.Debug("evaluated", Fields{"re": 2.0}, Fields{"n": 3})

	line := decodeLines(t, &buf)[0]
	if line["command"] != "mul" || line["re"] != 2.0 || line["n"] != 3.0 {
		t.Errorf("fields missing in %v", line)
	}
	if line["correlation_id"] != "abc" {
		t.Errorf("correlation_id = %v, want abc", line["correlation_id"])
	}
	if line["logger"] != "test" {
		t.Errorf("logger = %v, want test", line["logger"])
	}
}

func TestLoggerLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", mdwerror.New("bad operand").WithCode(mdwerror.CodeInvalidInput), "info"},
		{"medium severity", mdwerror.New("odd").WithCode(mdwerror.CodeInvalidOperation), "warn"},
		{"high severity", mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig), "error"},
		{"critical severity", mdwerror.New("bug").WithCode(mdwerror.CodeInternal), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			jsonLogger(&buf, LevelTrace).LogError(tt.err)

			line := decodeLines(t, &buf)[0]
			if line["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", line["level"], tt.wantLevel)
			}
		})
	}
}

func TestLoggerLogErrorFields(t *testing.T) {
	var buf bytes.Buffer
	err := mdwerror.New("bad operand").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("parse").
		WithDetail("input", "abc")

	jsonLogger(&buf, LevelTrace).LogError(err)
	jsonLogger(&buf, LevelTrace).LogError(nil)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line["error_code"] != "INVALID_INPUT" {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["error_operation"] != "parse" {
		t.Errorf("error_operation = %v", line["error_operation"])
	}
	if line["error_input"] != "abc" {
		t.Errorf("error_input = %v", line["error_input"])
	}
	if line["message"] != "bad operand" {
		t.Errorf("message = %v", line["message"])
	}
}

func TestLoggerCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf, EnableCaller: true})
	logger.Info("here")

	line := decodeLines(t, &buf)[0]
	caller, _ := line["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestLoggerIsLevelEnabled(t *testing.T) {
	logger := NewWithConfig(Config{Level: LevelWarn})
	if logger.IsLevelEnabled(LevelInfo) {
		t.Error("info should be disabled at warn")
	}
	if !logger.IsLevelEnabled(LevelError) {
		t.Error("error should be enabled at warn")
	}
	if Discard().IsLevelEnabled(LevelError) {
		t.Error("Discard() should disable every level")
	}
}

func TestLoggerConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.Info("concurrent", Fields{"n": n})
		}(i)
	}
	wg.Wait()

	if got := len(decodeLines(t, &buf)); got != 20 {
		t.Errorf("got %d lines, want 20", got)
	}
}

func BenchmarkLoggerInfo(b *testing.B) {
	var buf bytes.Buffer
	logger := jsonLogger(&buf, LevelInfo)
	for i := 0; i < b.N; i++ {
		buf.Reset()
		logger.Info("bench", Fields{"i": i})
	}
}
