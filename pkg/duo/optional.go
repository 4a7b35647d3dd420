package duo

// Optional represents a value that is either present (Something) or absent
// (Nothing). The container's tag, not the payload, is authoritative: an
// Optional may hold a nil pointer or a zero value and still be Something.
//
// The zero value of Optional[T] is Nothing.
type Optional[T any] struct {
	value    T
	hasValue bool
}

// Something constructs an Optional holding v.
func Something[T any](v T) Optional[T] {
	return Optional[T]{
		value:    v,
		hasValue: true,
	}
}

// Nothing constructs an empty Optional.
func Nothing[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSomething returns true if a value is present.
func (o Optional[T]) IsSomething() bool {
	return o.hasValue
}

// IsSomethingAnd returns true if a value is present and pred holds for it.
func (o Optional[T]) IsSomethingAnd(pred func(v T) bool) bool {
	return o.hasValue && pred(o.value)
}

// IsNothing returns true if the value is absent.
func (o Optional[T]) IsNothing() bool {
	return !o.hasValue
}

// IsNothingOr returns true if the value is absent or pred holds for it.
func (o Optional[T]) IsNothingOr(pred func(v T) bool) bool {
	return !o.hasValue || pred(o.value)
}

// Get returns the contained value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.hasValue
}

// And returns other if a value is present, otherwise the Nothing itself.
func (o Optional[T]) And(other Optional[T]) Optional[T] {
	if o.hasValue {
		return other
	}
	return o
}

// AndThen returns f(value) if a value is present, otherwise the Nothing
// itself. f is never invoked on Nothing.
func (o Optional[T]) AndThen(f func(v T) Optional[T]) Optional[T] {
	if o.hasValue {
		return f(o.value)
	}
	return o
}

// Or returns the Optional itself if a value is present, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.hasValue {
		return o
	}
	return other
}

// Map applies f to the contained value, if any. Type-changing transforms
// live in package opt.
func (o Optional[T]) Map(f func(v T) T) Optional[T] {
	if o.hasValue {
		return Something(f(o.value))
	}
	return o
}

// Filter keeps a present value only if pred holds for it.
func (o Optional[T]) Filter(pred func(v T) bool) Optional[T] {
	if o.hasValue && !pred(o.value) {
		return Nothing[T]()
	}
	return o
}

// Inspect invokes f with the contained value, if any, and returns the
// container unchanged.
func (o Optional[T]) Inspect(f func(v T)) Optional[T] {
	if o.hasValue {
		f(o.value)
	}
	return o
}

// SuccessOr converts the Optional into an Outcome: a present value becomes
// Success, absence becomes Failure(err). The err argument is subject to the
// same non-nil precondition as Failure.
func (o Optional[T]) SuccessOr(err error) Outcome[T] {
	if o.hasValue {
		return Success(o.value)
	}
	return Failure[T](err)
}

// Unwrap returns the contained value, panicking with an UnwrapError when
// the value is absent.
func (o Optional[T]) Unwrap() T {
	if !o.hasValue {
		panic(&UnwrapError{Call: "Unwrap", Variant: "Nothing"})
	}
	return o.value
}

// Expect returns the contained value, panicking with an ExpectationError
// carrying msg verbatim when the value is absent.
func (o Optional[T]) Expect(msg string) T {
	if !o.hasValue {
		panic(&ExpectationError{Message: msg})
	}
	return o.value
}

func (o Optional[T]) optionalVariant() string {
	if o.hasValue {
		return "Something"
	}
	return "Nothing"
}
