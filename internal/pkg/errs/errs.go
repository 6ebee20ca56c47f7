package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation groups every input validation failure. The concrete value errors
	// below match it through errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrObjectConflict    = errors.New("object conflict")
	ErrForbidden         = errors.New("forbidden")
	ErrExhausted         = errors.New("attempts exhausted")
	ErrStaleState        = errors.New("stale state")
)

func sanitize(v any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ValueIsRequiredError reports a missing mandatory value.
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

func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrValidation
}

// ValueIsInvalidError reports a value that is present but malformed.
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

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrValidation
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
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

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrValidation
}

// ObjectNotFoundError reports an absent record. Records owned by another tenant
// are reported the same way so their existence does not leak.
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
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectConflictError reports a uniqueness or dependency conflict, e.g. a duplicate
// table number or a table that still has active orders.
type ObjectConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectConflictError(paramName string, value any) *ObjectConflictError {
	return &ObjectConflictError{ParamName: paramName, Value: value}
}

func NewObjectConflictErrorWithCause(paramName string, value any, cause error) *ObjectConflictError {
	return &ObjectConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectConflict, e.ParamName, sanitize(e.Value)), e.Cause)
}

func (e *ObjectConflictError) Unwrap() error {
	return ErrObjectConflict
}

// ForbiddenError reports an operation that is well-formed but not permitted,
// such as referencing another tenant's product.
type ForbiddenError struct {
	Reason string
	Cause  error
}

func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func NewForbiddenErrorWithCause(reason string, cause error) *ForbiddenError {
	return &ForbiddenError{Reason: reason, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrForbidden, e.Reason), e.Cause)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ExhaustedError reports a bounded search that gave up.
type ExhaustedError struct {
	ParamName string
	Attempts  int
}

func NewExhaustedError(paramName string, attempts int) *ExhaustedError {
	return &ExhaustedError{ParamName: paramName, Attempts: attempts}
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: %s after %d attempts", ErrExhausted, e.ParamName, e.Attempts)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrExhausted
}

// StaleStateError reports a lost compare-and-set: the record changed between
// read and write. It also matches ErrObjectConflict.
type StaleStateError struct {
	ParamName string
	ID        any
	Expected  any
	Cause     error
}

func NewStaleStateError(paramName string, id, expected any) *StaleStateError {
	return &StaleStateError{ParamName: paramName, ID: id, Expected: expected}
}

func NewStaleStateErrorWithCause(paramName string, id, expected any, cause error) *StaleStateError {
	return &StaleStateError{ParamName: paramName, ID: id, Expected: expected, Cause: cause}
}

func (e *StaleStateError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s is no longer %s",
		ErrStaleState, e.ParamName, sanitize(e.ID), sanitize(e.Expected)), e.Cause)
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}

func (e *StaleStateError) Is(target error) bool {
	return target == ErrObjectConflict
}
