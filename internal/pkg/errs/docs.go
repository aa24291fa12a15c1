// Package errs provides standardized error types for the dishly order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into the kinds callers branch on:
//   - ErrValidation: malformed or out-of-range input (ValueIsRequiredError,
//     ValueIsInvalidError, ValueIsOutOfRangeError)
//   - ErrObjectNotFound: a referenced entity is absent (ObjectNotFoundError)
//   - ErrReferentialIntegrity: a delete is blocked by live references
//   - ErrInvalidTransition: a state machine precondition is violated
//   - ErrConflict: a concurrent write won the race
//   - ErrIntegrity: a stored invariant does not hold
//   - ErrForbidden: the principal may not act on the object
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Use errors.Is with the kind sentinels to classify an error, and errors.As
// with the struct types to read its details.
package errs
