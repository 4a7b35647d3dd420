package duo

import (
	"errors"
	"reflect"
)

// IsNil reports whether err is nil or a typed nil wrapped in the error
// interface. Failure and MapFailure use it to reject absent errors that a
// plain == nil comparison would miss.
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens err into its joined parts, returning an empty slice
// for a nil error and a single-element slice for a plain one.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsContractViolation reports whether err is one of the panic values this
// package uses to signal caller misuse or an internal defect. Intended for
// recover handlers at process boundaries that want to tell contract
// violations apart from ordinary panics.
func IsContractViolation(err error) bool {
	if IsNil(err) {
		return false
	}
	var expectErr *ExpectationError
	var unwrapErr *UnwrapError
	var invariantErr *InvariantError
	return errors.As(err, &expectErr) ||
		errors.As(err, &unwrapErr) ||
		errors.As(err, &invariantErr) ||
		errors.Is(err, ErrNilFailure)
}
