package duo

import (
	"errors"
	"fmt"
)

// ErrNilFailure is the panic value when Failure or MapFailure is handed a
// nil (or typed-nil) error. A Failure must always hold a genuine,
// inspectable error; the check runs at the boundary so a contract-violating
// container never exists, even transiently.
var ErrNilFailure = errors.New("duo: Failure requires a non-nil error")

// ExpectationError is the panic value for Expect/ExpectFailure invoked on
// the variant that does not hold the expected payload. Error returns the
// caller-supplied message verbatim.
type ExpectationError struct {
	Message string
}

func (e *ExpectationError) Error() string {
	return e.Message
}

// UnwrapError is the panic value for Unwrap/UnwrapFailure invoked on the
// variant that does not hold the requested payload. Unlike
// ExpectationError it carries a fixed message naming the misused call, so
// "I documented my assumption" and "I unconditionally assumed" failures
// stay distinguishable.
type UnwrapError struct {
	Call    string // the extraction that was misused, e.g. "Unwrap"
	Variant string // the variant it was invoked on, e.g. "Nothing"
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("duo: %s called on %s", e.Call, e.Variant)
}

// InvariantError is the panic value when variant dispatch reaches neither
// known variant. It signals a defect in this package (the two-variant
// closure was violated, e.g. via an uninitialized zero-value Outcome) and
// is never reachable through documented public use.
type InvariantError struct {
	Container string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("duo: %s holds neither variant", e.Container)
}
