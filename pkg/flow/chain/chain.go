package chain

import (
	"context"

	"github.com/ib-77/flow3/pkg/flow"
	"github.com/ib-77/flow3/pkg/flow/solo"
)

// Chain wraps a flow.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result flow.Result[T]
}

// Start creates a new chain from a flow.Result
func Start[T any](ctx context.Context, result flow.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: flow.Success(value),
	}
}

// Result returns the underlying flow.Result
func (c *Chain[T]) Result() flow.Result[T] {
	return c.result
}

// Then chains a function that returns flow.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) flow.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch[T, U](c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result flow.Result[T]) {
				if result.IsSuccess() {
					onSuccess(ctx, result.Result())
				}
			}),
	}
}

// OrElse keeps a successful chain unchanged; on failure the alternative is
// computed lazily.
func (c *Chain[T]) OrElse(alternative func(context.Context) flow.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.OrElse(c.ctx, c.result, alternative),
	}
}

// Or picks the first successful chain among the receiver and alternatives;
// when none succeeded, the first failure is kept.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	candidates := make([]*Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var firstFail *Chain[T]

	for _, ch := range candidates {
		if ch.result.IsSuccess() {
			return ch
		}
		if firstFail == nil && ch.result.IsFailure() {
			firstFail = ch
		}
	}

	if firstFail != nil {
		return firstFail
	}
	return c
}

// And requires every chain to succeed; the first failure wins, otherwise the
// last result is kept.
func (c *Chain[T]) And(required ...*Chain[T]) *Chain[T] {
	candidates := make([]*Chain[T], 0, len(required)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, required...)

	last := c
	for _, ch := range candidates {
		if ch.result.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onSuccess, onFailure)
}
