package chain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/duo/pkg/duo"
	"github.com/ib-77/duo/pkg/duo/solo"
)

// Chain wraps a duo.Outcome with context to enable fluent chaining. Each
// chain carries a trace id and start stamp that persist across steps.
type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	res       duo.Outcome[T]
}

// Start creates a new chain from a duo.Outcome.
func Start[T any](ctx context.Context, r duo.Outcome[T]) Chain[T] {
	return Chain[T]{
		ctx:       ctx,
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, duo.Success(v))
}

// Result returns the underlying duo.Outcome.
func (c Chain[T]) Result() duo.Outcome[T] {
	return c.res
}

// TraceID returns the id assigned when the chain was started.
func (c Chain[T]) TraceID() uuid.UUID {
	return c.id
}

// StartedAt returns the chain's creation time (UTC).
func (c Chain[T]) StartedAt() time.Time {
	return c.startedAt
}

func (c Chain[T]) with(r duo.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, id: c.id, startedAt: c.startedAt, res: r}
}

// Then composes a function that already returns duo.Outcome[T].
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) duo.Outcome[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return c.with(onSuccess(c.ctx, c.res.Unwrap()))
}

// ThenTry composes a function that returns (T, error), converting a
// non-nil error into a failure.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return c.with(solo.Try(c.ctx, c.res, try))
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return c.with(duo.Success(onSuccess(c.ctx, c.res.Unwrap())))
}

// Filter fails the chain with reject when pred does not hold for the
// successful value.
func (c Chain[T]) Filter(pred func(ctx context.Context, t T) bool, reject error) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	if pred(c.ctx, c.res.Unwrap()) {
		return c
	}
	return c.with(duo.Failure[T](reject))
}

// Validate fails the chain with the produced message when validate rejects
// the successful value.
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	return c.with(solo.AndValidate(c.ctx, c.res, validate))
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil callbacks are skipped.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.UnwrapFailure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Unwrap())
	}
	return c
}

// Or returns the chain itself when successful, otherwise alternative.
// When both failed, the failures are joined so neither is lost.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c.with(duo.Failure[T](errors.Join(
		c.res.UnwrapFailure(), alternative.res.UnwrapFailure())))
}

// And returns the first failed chain, otherwise required.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return c.with(required.res)
}

// RepeatUntil applies onSuccess repeatedly until it fails or until holds.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) duo.Outcome[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

// While applies onSuccess for as long as the chain succeeds and while
// holds.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) duo.Outcome[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// To chains a function that returns duo.Outcome[U], carrying the trace
// stamps over to the new chain.
func To[T, U any](c Chain[T], onSuccess func(context.Context, T) duo.Outcome[U]) Chain[U] {
	return Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		res:       solo.Switch(c.ctx, c.res, onSuccess),
	}
}

// ToTry chains a function that returns (U, error).
func ToTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		res:       solo.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Transform chains a pure transformation function.
func Transform[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		res:       solo.Map(c.ctx, c.res, onSuccess),
	}
}

// Reduce collapses the chain into a value of another type using
// solo.Finally.
func Reduce[T, U any](c Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
