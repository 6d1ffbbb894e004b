// Package errs provides the standardized error types of the service-area
// partition engine. Every validation and lookup failure across the kernel,
// the partition aggregates, and the use cases is expressed through these
// types, so the HTTP adapter can classify errors with errors.Is/errors.As
// instead of string matching.
//
// The package includes error types for the recurring failure scenarios:
//   - ValueIsRequiredError: a required value (a region code, a province set) is missing
//   - ValueIsInvalidError: a value fails validation (a non-positive warehouse ID)
//   - ObjectNotFoundError: an object cannot be located by its identifier
//     (an unknown warehouse)
//   - Other specialized types for range and versioning failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classification works
//
// Note that the exclusivity conflict of a partition replace is not defined
// here: it is a domain outcome with its own payload and lives with the
// partition aggregate as ConflictError.
package errs
