package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below unwrap to these so callers can
// classify failures with errors.Is without depending on concrete types.
var (
	ErrObjectNotFound  = errors.New("object not found")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrValueIsRequired = errors.New("value is required")
	ErrConfiguration   = errors.New("configuration is invalid")
	ErrExternalCall    = errors.New("external call failed")
)

// sanitize collapses newlines so multi-line values (upstream response
// bodies, user input) cannot break log lines.
func sanitize(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	return strings.ReplaceAll(value, "\n", " ")
}

// ObjectNotFoundError indicates that a record with the given identifier
// does not exist in the store.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConfigurationError indicates that a process-wide default required by the
// current operation is not configured. Configuration errors are fatal to
// the single operation and are never silently defaulted past.
type ConfigurationError struct {
	ParamName string
	Cause     error
}

// NewConfigurationError creates a ConfigurationError without a cause.
func NewConfigurationError(paramName string) *ConfigurationError {
	return &ConfigurationError{ParamName: paramName}
}

// NewConfigurationErrorWithCause creates a ConfigurationError wrapping the
// underlying cause.
func NewConfigurationErrorWithCause(paramName string, cause error) *ConfigurationError {
	return &ConfigurationError{ParamName: paramName, Cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrConfiguration, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConfiguration, e.ParamName))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// ExternalCallError indicates a failed call to an upstream system. Body
// carries the upstream response body verbatim (sanitized of newlines) so
// operators can diagnose the failure from logs.
type ExternalCallError struct {
	Operation string
	Body      string
	Cause     error
}

// NewExternalCallError creates an ExternalCallError without an upstream body.
func NewExternalCallError(operation string, cause error) *ExternalCallError {
	return &ExternalCallError{Operation: operation, Cause: cause}
}

// NewExternalCallErrorWithBody creates an ExternalCallError that preserves
// the upstream response body for diagnostics.
func NewExternalCallErrorWithBody(operation, body string, cause error) *ExternalCallError {
	return &ExternalCallError{Operation: operation, Body: body, Cause: cause}
}

func (e *ExternalCallError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrExternalCall, e.Operation)
	if e.Body != "" {
		msg += fmt.Sprintf(" (body: %s)", e.Body)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return sanitize(msg)
}

func (e *ExternalCallError) Unwrap() error {
	return ErrExternalCall
}
