// Package chain provides a fluent Chain[T] for synchronous composition of
// Outcome[T] values.
//
// A Chain carries the caller's context plus a uuid trace id and a UTC
// start stamp for diagnostics; both survive every step, so a collapsed
// pipeline can still be correlated in logs. The wrapped Outcome stays a
// plain comparable value.
//
// Highlights:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map/Filter: transform or gate the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And/RepeatUntil/While: combine and iterate chains
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps are package-level functions (To, ToTry, Transform,
// Reduce) because Go methods cannot introduce type parameters.
package chain
