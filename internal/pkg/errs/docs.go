// Package errs provides the typed errors shared by every layer of the service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The taxonomy is:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError (all match ErrValidation)
//   - ObjectNotFoundError for absent or cross-tenant records
//   - ObjectConflictError for duplicates and blocked deletes
//   - ForbiddenError for disallowed references and transitions
//   - ExhaustedError for bounded searches that gave up
//   - StaleStateError for lost compare-and-set races (also matches ErrObjectConflict)
//
// Errors are never swallowed or coerced; callers classify them with errors.Is/As.
package errs
