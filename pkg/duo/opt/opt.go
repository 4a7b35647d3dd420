package opt

import (
	"github.com/ib-77/duo/pkg/duo"
)

// Map applies f to a present value, producing an Optional of f's result
// type. Absence carries over unchanged; f is never invoked on Nothing.
func Map[In, Out any](o duo.Optional[In], f func(v In) Out) duo.Optional[Out] {
	if v, ok := o.Get(); ok {
		return duo.Something(f(v))
	}
	return duo.Nothing[Out]()
}

// Switch binds f over a present value, letting f decide presence of the
// result. Absence carries over unchanged.
func Switch[In, Out any](o duo.Optional[In], f func(v In) duo.Optional[Out]) duo.Optional[Out] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return duo.Nothing[Out]()
}

// Finally reduces the Optional to a concrete value via the handler for its
// active variant.
func Finally[In, Out any](o duo.Optional[In],
	onSomething func(v In) Out,
	onNothing func() Out) Out {

	if v, ok := o.Get(); ok {
		return onSomething(v)
	}
	return onNothing()
}

// Flatten collapses a nested Optional by one level.
func Flatten[T any](o duo.Optional[duo.Optional[T]]) duo.Optional[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return duo.Nothing[T]()
}

// Of adapts Go's comma-ok convention into an Optional.
func Of[T any](v T, ok bool) duo.Optional[T] {
	if ok {
		return duo.Something(v)
	}
	return duo.Nothing[T]()
}

// FromPtr adapts a possibly-nil pointer into an Optional of its referent.
func FromPtr[T any](p *T) duo.Optional[T] {
	if p == nil {
		return duo.Nothing[T]()
	}
	return duo.Something(*p)
}

// ToPtr returns a pointer to a copy of the contained value, or nil for
// Nothing.
func ToPtr[T any](o duo.Optional[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
