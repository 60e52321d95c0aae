// Package errs provides standardized error types for the order bridge.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package maps the failure taxonomy of the system onto a small set of
// error types:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ObjectNotFoundError: a record cannot be found
//   - ConfigurationError: a process-wide default that an operation depends
//     on (ship-from address, service code) is not configured
//   - ExternalCallError: a call to the shipping platform or the ERP failed;
//     the upstream response body is preserved for diagnostics
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrConfiguration)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
package errs
