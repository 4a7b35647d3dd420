// Package duo provides two closed, immutable container types and a total
// combinator surface over them:
//
//   - Optional[T]: a value that is present (Something) or absent (Nothing)
//   - Outcome[T]: an operation that succeeded (Success) or failed (Failure)
//
// Highlights:
// - Something/Nothing, Success/Failure: construct containers
// - And/Or/AndThen/Map/Filter: compose without unwrapping
// - Inspect/InspectFailure: side effects that leave the container unchanged
// - Unwrap/Expect: extract, panicking on the wrong variant
// - SuccessOr and the Success/Failure accessors: convert between the two types
// - IsOptional/IsOutcome: runtime guards for dynamic boundaries
//
// Containers are plain values: every combinator returns a new container or
// an extracted value and never mutates in place, so they are safe to share
// and to compare with ==. Misuse (wrong-variant extraction, constructing a
// Failure from a nil error) panics immediately with a typed error rather
// than producing a half-valid container.
package duo
