// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for code validity, categories and exit status mapping.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-06
// Modified: 2025-02-06
//
// Change History:
// - 2025-02-06 v0.1.0: Initial test implementation

package error

import "testing"

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation,
	CodeNonFinite,
	CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
	CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
}

func TestCodeIsValid(t *testing.T) {
	for _, code := range allCodes {
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}

	if Code("DATABASE_ERROR").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeNonFinite, "arithmetic"},
		{CodeInvalidOperation, "arithmetic"},
		{CodeConfigError, "configuration"},
		{CodeMissingConfig, "configuration"},
		{CodeInvalidConfig, "configuration"},
		{CodeInvalidInput, "validation"},
		{CodeValidationFailed, "validation"},
		{CodeInvalidFormat, "validation"},
		{CodeValueOutOfRange, "validation"},
		{CodeInternal, "generic"},
		{CodeUnknown, "generic"},
		{Code("SOMETHING"), "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, 2},
		{CodeValueOutOfRange, 2},
		{CodeInvalidConfig, 3},
		{CodeMissingConfig, 3},
		{CodeNonFinite, 4},
		{CodeInternal, 1},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
