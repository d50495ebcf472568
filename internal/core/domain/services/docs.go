// Package services provides domain services that work on the kitchen order model
// without belonging to a single aggregate.
//
// The package includes:
//   - OrderAggregator: folds flat order/item join rows into Order aggregates
//   - DecodeModifiers / EncodeModifiers: the stored text form of item modifiers
//
// Services here are pure: no I/O, no clock, no caching.
package services
