// Package purpose defines what a frame is for.
//
// A Purpose is an immutable predicate over buffers plus display metadata.
// It is built from exactly one predicate source: either a declarative
// mode/filename specification, or an explicit predicate function.
// Filtering a buffer set by a purpose is a pure, order-preserving
// operation with no side effects.
package purpose
