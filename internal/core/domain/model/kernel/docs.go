// Package kernel provides the shared domain primitives of the kitchen order
// service.
//
// The package includes:
//   - ID: an opaque, stable identifier used for orders and domain events
//
// Identifiers created here are random UUIDs so an identifier is never reused
// after the entity it named is deleted. Identifiers read back from storage or
// received from clients are accepted verbatim; they only need to be non-empty.
package kernel
