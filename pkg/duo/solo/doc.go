// Package solo contains single-value, synchronous combinators that operate
// on Outcome[T]. These functions form the building blocks for error-aware
// pipelines; callbacks receive the caller's context but the package itself
// never blocks or cancels.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Outcome[In] to Outcome[Out]
// - Map/DoubleMap: transform successful values (with an error observer)
// - Try: call a function (Out, error) and convert the error to a failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
