// File: format_test.go
// Title: Log Format Tests
// Description: Tests for format parsing and the JSON, text, console and logfmt
//              renderings.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
)

func sampleEntry() *Entry {
	entry := NewEntry(LevelWarn, "non-finite result")
	entry.Timestamp = time.Date(2025, 2, 8, 10, 30, 0, 0, time.UTC)
	entry.Logger = "complexible"
	entry.CorrelationID = "3f2a9c1e-0000-4000-8000-000000000000"
	entry.Fields = Fields{"op": "div", "re": 1.5}
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && tt.input != "" && got.String() != strings.ToLower(tt.input) {
				t.Errorf("String() = %q, want %q", got.String(), strings.ToLower(tt.input))
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	entry := sampleEntry()
	entry.Duration = 1500 * time.Microsecond

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	checks := map[string]interface{}{
		"level":          "warn",
		"message":        "non-finite result",
		"logger":         "complexible",
		"correlation_id": entry.CorrelationID,
		"op":             "div",
		"re":             1.5,
		"duration_ms":    1.5,
		"timestamp":      "2025-02-08T10:30:00Z",
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
}

func TestJSONFormatter_StructuredError(t *testing.T) {
	entry := sampleEntry()
	entry.Error = mdwerror.New("cannot parse").WithCode(mdwerror.CodeInvalidInput)

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded struct {
		Error        string `json:"error"`
		ErrorDetails struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
		} `json:"error_details"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if decoded.Error != "cannot parse" {
		t.Errorf("error = %q, want %q", decoded.Error, "cannot parse")
	}
	if decoded.ErrorDetails.Code != "INVALID_INPUT" {
		t.Errorf("error_details.code = %q, want INVALID_INPUT", decoded.ErrorDetails.Code)
	}
	if decoded.ErrorDetails.Severity != "low" {
		t.Errorf("error_details.severity = %q, want low", decoded.ErrorDetails.Severity)
	}
}

func TestTextFormatter_Format(t *testing.T) {
	entry := sampleEntry()
	entry.Error = errors.New("division by zero magnitude")

	data, _ := NewTextFormatter().Format(entry)
	got := string(data)

	want := `10:30:00 [WRN] {complexible} (3f2a9c1e) non-finite result [op=div re=1.5] error="division by zero magnitude"` + "\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	data, _ := f.Format(NewEntry(LevelInfo, "hello"))
	if string(data) != "[INF] hello\n" {
		t.Errorf("Format() = %q, want %q", string(data), "[INF] hello\n")
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	data, _ := f.Format(NewEntry(LevelError, "failed"))
	if string(data) != "ERR failed\n" {
		t.Errorf("Format() = %q, want %q", string(data), "ERR failed\n")
	}

	f.DisableColors = false
	data, _ = f.Format(NewEntry(LevelError, "failed"))
	if !strings.Contains(string(data), "ERR") || !strings.Contains(string(data), "failed") {
		t.Errorf("colored Format() = %q, missing tag or message", string(data))
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	data, _ := NewLogfmtFormatter().Format(sampleEntry())
	got := string(data)

	want := `timestamp=2025-02-08T10:30:00Z level=warn message="non-finite result" logger=complexible correlation_id=3f2a9c1e-0000-4000-8000-000000000000 op="div" re=1.5` + "\n"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatConsole, "*log.ConsoleFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(42), "*log.TextFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := typeName(GetFormatter(tt.format)); got != tt.want {
				t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONFormatter:
		return "*log.JSONFormatter"
	case *TextFormatter:
		return "*log.TextFormatter"
	case *ConsoleFormatter:
		return "*log.ConsoleFormatter"
	case *LogfmtFormatter:
		return "*log.LogfmtFormatter"
	default:
		return "unknown"
	}
}

func BenchmarkJSONFormatter_Format(b *testing.B) {
	f := NewJSONFormatter()
	entry := sampleEntry()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	f := NewTextFormatter()
	entry := sampleEntry()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(entry)
	}
}
