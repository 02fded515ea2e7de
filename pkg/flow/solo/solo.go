package solo

import (
	"context"
	"errors"

	"github.com/ib-77/flow3/pkg/flow"
)

func Succeed[T any](input T) flow.Result[T] {
	return flow.Success(input)
}

func Fail[T any](err error) flow.Result[T] {
	return flow.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) flow.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input flow.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) flow.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return flow.Success(input.Result())
		} else {
			return flow.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input flow.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in flow.Result[T]) flow.Result[T]) flow.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current flow.Result[T]) flow.Result[T] {

			if current.IsFailure() {
				e := flow.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if flow.IsNil(err) {
				return current
			}

			return flow.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input flow.Result[In],
	onSuccess func(ctx context.Context, r In) flow.Result[Out]) flow.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return flow.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input flow.Result[In],
	onSuccess func(ctx context.Context, r In) Out) flow.Result[Out] {

	if input.IsSuccess() {
		return flow.Success(onSuccess(ctx, input.Result()))
	}
	return flow.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input flow.Result[T],
	onSuccess func(ctx context.Context, r flow.Result[T])) flow.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input flow.Result[T],
	condition func(ctx context.Context, r flow.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r flow.Result[T])) flow.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input flow.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) flow.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input flow.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) flow.Result[Out] {

	if input.IsSuccess() {
		return flow.Success(onSuccess(ctx, input.Result()))
	}

	onError(ctx, input.Err())

	return flow.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input flow.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) flow.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return flow.Fail[Out](err)
		}

		return flow.Success(out)
	}

	return flow.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input flow.Result[T],
	maybeErr func(ctx context.Context, in T) error) flow.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return flow.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// OrElse keeps a success unchanged; the alternative is computed only on
// failure.
func OrElse[T any](ctx context.Context, input flow.Result[T],
	alternative func(ctx context.Context) flow.Result[T]) flow.Result[T] {

	if input.IsSuccess() {
		return input
	}
	return alternative(ctx)
}

func Finally[In, Out any](ctx context.Context, input flow.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input flow.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current flow.Result[T]) flow.Result[T],
	inputsF ...func(ctx context.Context, in flow.Result[T]) flow.Result[T]) flow.Result[T] {

	if len(inputsF) == 0 || concat == nil || !flow.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !flow.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !flow.IsNil(ctx.Err()) {
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
