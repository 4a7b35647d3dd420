package solo

import (
	"context"
	"errors"

	"github.com/ib-77/duo/pkg/duo"
)

func Succeed[T any](input T) duo.Outcome[T] {
	return duo.Success(input)
}

func Fail[T any](err error) duo.Outcome[T] {
	return duo.Failure[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) duo.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input duo.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) duo.Outcome[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Unwrap()); valid {
			return input
		} else {
			return duo.Failure[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input duo.Outcome[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in duo.Outcome[T]) duo.Outcome[T]) duo.Outcome[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current duo.Outcome[T]) duo.Outcome[T] {

			if current.IsFailure() {
				e := duo.GetErrors(err)
				e = append(e, current.UnwrapFailure())
				err = errors.Join(e...)
			}

			if duo.IsNil(err) {
				return current
			}

			return duo.Failure[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input duo.Outcome[In],
	onSuccess func(ctx context.Context, r In) duo.Outcome[Out]) duo.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Unwrap())
	}
	return duo.Failure[Out](input.UnwrapFailure())
}

func Map[In any, Out any](ctx context.Context,
	input duo.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out) duo.Outcome[Out] {

	if input.IsSuccess() {
		return duo.Success(onSuccess(ctx, input.Unwrap()))
	}
	return duo.Failure[Out](input.UnwrapFailure())
}

func Tee[T any](ctx context.Context,
	input duo.Outcome[T],
	onSuccess func(ctx context.Context, r duo.Outcome[T])) duo.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input duo.Outcome[T],
	condition func(ctx context.Context, r duo.Outcome[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r duo.Outcome[T])) duo.Outcome[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input duo.Outcome[T],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err error)) duo.Outcome[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Unwrap())
	} else {
		onFailure(ctx, input.UnwrapFailure())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input duo.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) error) duo.Outcome[Out] {

	if input.IsSuccess() {
		return duo.Success(onSuccess(ctx, input.Unwrap()))
	}

	return duo.Failure[Out](onFailure(ctx, input.UnwrapFailure()))
}

func Try[In any, Out any](ctx context.Context, input duo.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) duo.Outcome[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Unwrap())
		if err != nil {
			return duo.Failure[Out](err)
		}

		return duo.Success(out)
	}

	return duo.Failure[Out](input.UnwrapFailure())
}

func FailOnError[T any](ctx context.Context, input duo.Outcome[T],
	maybeErr func(ctx context.Context, in T) error) duo.Outcome[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Unwrap())
		if err != nil {
			return duo.Failure[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input duo.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Unwrap())
	}
	return onFailure(ctx, input.UnwrapFailure())
}

func Join[T any](ctx context.Context,
	input duo.Outcome[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current duo.Outcome[T]) duo.Outcome[T],
	inputsF ...func(ctx context.Context, in duo.Outcome[T]) duo.Outcome[T]) duo.Outcome[T] {

	if len(inputsF) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if ctx.Err() != nil {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if ctx.Err() != nil {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
