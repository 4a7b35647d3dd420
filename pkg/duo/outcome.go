package duo

// Outcome represents an operation that either produced a value (Success)
// or failed with an error (Failure). A Failure always holds a genuine,
// non-nil error; Success carries no constraint on its value.
//
// The zero value of Outcome[T] holds neither variant and is rejected by
// every operation that touches the failure side; only the constructors
// produce usable containers.
type Outcome[T any] struct {
	value     T
	err       error
	isSuccess bool
}

// Success constructs a successful Outcome holding v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		isSuccess: true,
	}
}

// Failure constructs a failed Outcome holding err. It panics with
// ErrNilFailure when err is nil or a typed nil: the precondition is
// enforced here, at the boundary, so no Failure without an inspectable
// error ever exists.
func Failure[T any](err error) Outcome[T] {
	if IsNil(err) {
		panic(ErrNilFailure)
	}
	return Outcome[T]{
		err: err,
	}
}

// IsSuccess returns true if the operation succeeded.
func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsSuccessAnd returns true if the operation succeeded and pred holds for
// its value.
func (o Outcome[T]) IsSuccessAnd(pred func(v T) bool) bool {
	return o.isSuccess && pred(o.value)
}

// IsFailure returns true if the operation failed.
func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// IsFailureAnd returns true if the operation failed and pred holds for its
// error.
func (o Outcome[T]) IsFailureAnd(pred func(err error) bool) bool {
	if o.isSuccess {
		return false
	}
	return pred(o.failureErr())
}

// Get returns the contained value and error in Go's conventional shape.
func (o Outcome[T]) Get() (T, error) {
	if o.isSuccess {
		return o.value, nil
	}
	var zero T
	return zero, o.failureErr()
}

// Success converts the success side into an Optional, discarding the error.
func (o Outcome[T]) Success() Optional[T] {
	if o.isSuccess {
		return Something(o.value)
	}
	return Nothing[T]()
}

// Failure converts the failure side into an Optional, discarding the value.
func (o Outcome[T]) Failure() Optional[error] {
	if o.isSuccess {
		return Nothing[error]()
	}
	return Something(o.failureErr())
}

// And returns other if the operation succeeded, otherwise the Failure
// itself.
func (o Outcome[T]) And(other Outcome[T]) Outcome[T] {
	if o.isSuccess {
		return other
	}
	return o
}

// AndThen returns f(value) if the operation succeeded, otherwise the
// Failure itself. f is never invoked on Failure.
func (o Outcome[T]) AndThen(f func(v T) Outcome[T]) Outcome[T] {
	if o.isSuccess {
		return f(o.value)
	}
	return o
}

// Or returns the Outcome itself if the operation succeeded, otherwise
// other.
func (o Outcome[T]) Or(other Outcome[T]) Outcome[T] {
	if o.isSuccess {
		return o
	}
	return other
}

// Map applies f to the success value, leaving a Failure untouched.
// Type-changing transforms live in package solo.
func (o Outcome[T]) Map(f func(v T) T) Outcome[T] {
	if o.isSuccess {
		return Success(f(o.value))
	}
	return o
}

// MapFailure applies f to the failure error, leaving a Success untouched.
// The mapped error is subject to the same non-nil precondition as Failure.
func (o Outcome[T]) MapFailure(f func(err error) error) Outcome[T] {
	if o.isSuccess {
		return o
	}
	return Failure[T](f(o.failureErr()))
}

// Inspect invokes f with the success value, if any, and returns the
// container unchanged.
func (o Outcome[T]) Inspect(f func(v T)) Outcome[T] {
	if o.isSuccess {
		f(o.value)
	}
	return o
}

// InspectFailure invokes f with the failure error, if any, and returns the
// container unchanged.
func (o Outcome[T]) InspectFailure(f func(err error)) Outcome[T] {
	if !o.isSuccess {
		f(o.failureErr())
	}
	return o
}

// Unwrap returns the success value, panicking with an UnwrapError on
// Failure.
func (o Outcome[T]) Unwrap() T {
	if !o.isSuccess {
		panic(&UnwrapError{Call: "Unwrap", Variant: "Failure"})
	}
	return o.value
}

// UnwrapFailure returns the failure error, panicking with an UnwrapError
// on Success.
func (o Outcome[T]) UnwrapFailure() error {
	if o.isSuccess {
		panic(&UnwrapError{Call: "UnwrapFailure", Variant: "Success"})
	}
	return o.failureErr()
}

// Expect returns the success value, panicking with an ExpectationError
// carrying msg verbatim on Failure.
func (o Outcome[T]) Expect(msg string) T {
	if !o.isSuccess {
		panic(&ExpectationError{Message: msg})
	}
	return o.value
}

// ExpectFailure returns the failure error, panicking with an
// ExpectationError carrying msg verbatim on Success.
func (o Outcome[T]) ExpectFailure(msg string) error {
	if o.isSuccess {
		panic(&ExpectationError{Message: msg})
	}
	return o.failureErr()
}

// failureErr returns the failure payload. A nil payload on the failure
// side means the two-variant closure was violated (an uninitialized zero
// value reached dispatch), which is a defect in this package.
func (o Outcome[T]) failureErr() error {
	if o.err == nil {
		panic(&InvariantError{Container: "Outcome"})
	}
	return o.err
}

func (o Outcome[T]) outcomeVariant() string {
	if o.isSuccess {
		return "Success"
	}
	return "Failure"
}
