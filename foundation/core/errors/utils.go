// File: utils.go
// Title: Error Construction Utilities
// Description: A fluent builder and constructors for the error shapes used
//              across complexible: invalid input, out of range, validation
//              failures and non-finite arithmetic results.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial builder, constructors and validators

package errors

import (
	"fmt"
	"reflect"

	mdwerror "github.com/kevmasajedi/complexible/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = defaultCode(eb.module)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	severity := mdwerror.GetSeverityFromCode(eb.code)
	if eb.severitySet {
		severity = eb.severity
	}

	return err.
		WithCode(eb.code).
		WithSeverity(severity).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// InvalidInput creates an error for an argument that cannot be used
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates an error for input with the wrong shape
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("invalid format in %s: expected %s", module, expectedFormat).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed wraps a failure of a module operation
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// ValidationFailed creates an error for a field that failed validation
func ValidationFailed(module, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Messagef("validation failed for field %s: %s", field, reason).
		Code(mdwerror.CodeValidationFailed).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Build()
}

// OutOfRange creates an error for a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v] in %s.%s", value, min, max, module, operation).
		Code(mdwerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates an error for a missing item
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s.%s", identifier, module, operation).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// MathxNonFinite reports an arithmetic result with an Inf or NaN part
func MathxNonFinite(operation string, result interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleMathx).
		Operation(operation).
		Messagef("%s produced a non-finite result", operation).
		Code(mdwerror.CodeNonFinite).
		Detail("result", fmt.Sprint(result)).
		Build()
}

// ExtractDetails returns the details of one of our errors, or nil
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule returns the module recorded on an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation returns the operation recorded on an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// ValidateRequired validates that a value is not nil or empty
func ValidateRequired(module, field string, value interface{}) error {
	if value == nil {
		return ValidationFailed(module, field, value, "cannot be nil")
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		if v.Len() == 0 {
			return ValidationFailed(module, field, value, "cannot be empty")
		}
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return ValidationFailed(module, field, value, "cannot be nil")
		}
	}

	return nil
}

// ValidateRange validates that a numeric value lies in [min, max]
func ValidateRange(module, field string, value, min, max interface{}) error {
	val, err := toFloat64(value)
	if err != nil {
		return InvalidInput(module, "validate_"+field, value, "numeric value")
	}
	minVal, err := toFloat64(min)
	if err != nil {
		return InvalidInput(module, "validate_"+field, min, "numeric min value")
	}
	maxVal, err := toFloat64(max)
	if err != nil {
		return InvalidInput(module, "validate_"+field, max, "numeric max value")
	}

	if val < minVal || val > maxVal {
		return OutOfRange(module, "validate_"+field, value, min, max).
			WithDetail("field", field)
	}
	return nil
}

func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}
