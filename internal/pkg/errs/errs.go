package errs

import (
	"errors"
	"fmt"
	"strings"
)

// kindSentinel is a sentinel that belongs to a broader error kind.
// errors.Is(err, ErrValueIsInvalid) and errors.Is(err, ErrValidation) both hold
// for a ValueIsInvalidError.
type kindSentinel struct {
	msg  string
	kind error
}

func (s *kindSentinel) Error() string { return s.msg }

func (s *kindSentinel) Unwrap() error { return s.kind }

// Error kinds.
var (
	ErrValidation           = errors.New("validation failed")
	ErrObjectNotFound       = errors.New("object not found")
	ErrReferentialIntegrity = errors.New("referential integrity violated")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrConflict             = errors.New("concurrent modification")
	ErrIntegrity            = errors.New("integrity violated")
	ErrForbidden            = errors.New("forbidden")
)

// Validation sentinels.
var (
	ErrValueIsRequired   error = &kindSentinel{msg: "value is required", kind: ErrValidation}
	ErrValueIsInvalid    error = &kindSentinel{msg: "value is invalid", kind: ErrValidation}
	ErrValueIsOutOfRange error = &kindSentinel{msg: "value is out of range", kind: ErrValidation}
)

// IsValidation reports whether err is a validation error of any flavor.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause.Error())
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value does not satisfy a format or
// membership rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError is returned when a referenced entity does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ReferentialIntegrityError is returned when an entity cannot be removed
// because other entities still reference it.
type ReferentialIntegrityError struct {
	Object     string
	ID         any
	Dependents string
	Count      int64
	Cause      error
}

func NewReferentialIntegrityError(object string, id any, dependents string, count int64) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Object: object, ID: id, Dependents: dependents, Count: count}
}

func NewReferentialIntegrityErrorWithCause(object string, id any, dependents string, cause error) *ReferentialIntegrityError {
	return &ReferentialIntegrityError{Object: object, ID: id, Dependents: dependents, Cause: cause}
}

func (e *ReferentialIntegrityError) Error() string {
	msg := fmt.Sprintf("%s: %s %s is referenced by %s", ErrReferentialIntegrity, e.Object, sanitize(e.ID), e.Dependents)
	if e.Count > 0 {
		msg = fmt.Sprintf("%s: %s %s is referenced by %d %s",
			ErrReferentialIntegrity, e.Object, sanitize(e.ID), e.Count, e.Dependents)
	}
	return withCause(msg, e.Cause)
}

func (e *ReferentialIntegrityError) Unwrap() error {
	return ErrReferentialIntegrity
}

// InvalidTransitionError is returned when a state machine is asked for a
// transition its relation does not contain.
type InvalidTransitionError struct {
	Machine string
	From    string
	To      string
}

func NewInvalidTransitionError(machine, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Machine: machine, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s %s -> %s", ErrInvalidTransition, e.Machine, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConflictError is returned when a write lost a race against another write
// to the same object. Callers retry with fresh state.
type ConflictError struct {
	Object  string
	ID      any
	Version int
}

func NewConflictError(object string, id any, version int) *ConflictError {
	return &ConflictError{Object: object, ID: id, Version: version}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s changed since version %d", ErrConflict, e.Object, sanitize(e.ID), e.Version)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IntegrityError signals that a stored invariant does not hold. It points at
// a prior bug and is surfaced, never patched over.
type IntegrityError struct {
	Object string
	ID     any
	Reason string
}

func NewIntegrityError(object string, id any, reason string) *IntegrityError {
	return &IntegrityError{Object: object, ID: id, Reason: reason}
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrIntegrity, e.Object, sanitize(e.ID), e.Reason)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// ForbiddenError is returned when the principal may not perform an action on
// an object it can otherwise see.
type ForbiddenError struct {
	Action string
	Reason string
}

func NewForbiddenError(action, reason string) *ForbiddenError {
	return &ForbiddenError{Action: action, Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrForbidden, e.Action, e.Reason)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
