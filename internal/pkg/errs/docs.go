// Package errs provides the error taxonomy of the kitchen order service.
// Every error that crosses the use-case boundary is one of these types, so
// transports can map them to responses without inspecting storage faults.
//
// The package includes:
//   - ObjectNotFoundError: no entity with the given identifier exists
//   - TransitionIsInvalidError: a requested order status is unknown or unreachable
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - StorageUnavailableError: the underlying store call failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works
//
// Classify converts anything outside the taxonomy into a StorageUnavailableError.
package errs
