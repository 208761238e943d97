// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Error kinds map to the caller-facing outcomes of the orchestration engine:
//   - ObjectNotFoundError: a request, task, carrier, or warehouse does not exist
//   - ValueIsInvalidError / ValueIsOutOfRangeError / ValueIsRequiredError:
//     input failed validation
//   - InvalidStateError: the object's lifecycle state forbids the operation
//   - ConflictError: a logical or concurrent conflict, such as two carriers
//     claiming the same delivery slot
//
// Each error type follows the same pattern: a sentinel error variable (e.g.
// ErrConflict), a struct with fields for error details, constructors with and
// without cause, an Error() method, and an Unwrap() method so errors.Is can
// classify any error by kind.
//
// All of these kinds are recoverable, caller-facing outcomes. Storage failures
// are the only fatal class and are propagated as-is.
package errs
