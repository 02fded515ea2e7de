package pipeline

import (
	"context"
	"errors"

	"github.com/ib-77/flow3/pkg/flow"
	"github.com/ib-77/flow3/pkg/flow/solo"
)

// Pipeline composes three fallible stages over raw textual records:
// Parse decomposes the raw input, Validate applies domain rules, Format
// renders a fully validated record. Fallback produces the caller-visible
// text when any stage failed. A Pipeline holds no state and is safe to
// reuse across calls.
type Pipeline[R any] struct {
	Parse    func(ctx context.Context, raw string) flow.Result[R]
	Validate func(ctx context.Context, rec R) flow.Result[R]
	Format   func(ctx context.Context, rec R) string
	Fallback func(ctx context.Context, err error) string
}

// Eval runs parse -> validate -> format without collapsing the outcome.
// Parse failures and validation failures stay distinguishable here through
// the error payload; Run folds both into the same fallback text.
func (p Pipeline[R]) Eval(ctx context.Context, raw string) flow.Result[string] {
	parsed := p.Parse(ctx, raw)
	validated := solo.Switch(ctx, parsed, p.Validate)
	return solo.Map(ctx, validated, p.Format)
}

// Run evaluates raw and collapses the outcome: the formatted record on
// success, the fallback text on any failure. Format never runs on a record
// that failed validation.
func (p Pipeline[R]) Run(ctx context.Context, raw string) string {
	return solo.Finally(ctx, p.Eval(ctx, raw),
		func(_ context.Context, formatted string) string {
			return formatted
		},
		p.Fallback)
}

// Rule is a single named validation predicate.
type Rule[R any] func(ctx context.Context, rec R) (valid bool, errMsg string)

// Rules combines rules into a validator that applies every rule and joins
// the failures into one error, unwrappable via flow.GetErrors.
func Rules[R any](rules ...Rule[R]) func(ctx context.Context, rec R) flow.Result[R] {
	return func(ctx context.Context, rec R) flow.Result[R] {
		var errs []error
		for _, rule := range rules {
			if valid, errMsg := rule(ctx, rec); !valid {
				errs = append(errs, errors.New(errMsg))
			}
		}
		if len(errs) > 0 {
			return flow.Fail[R](errors.Join(errs...))
		}
		return flow.Success(rec)
	}
}

// FirstOf tries each rule in order and fails on the first violation,
// mirroring solo.ValidateAll with breakOnError.
func FirstOf[R any](rules ...Rule[R]) func(ctx context.Context, rec R) flow.Result[R] {
	return func(ctx context.Context, rec R) flow.Result[R] {
		checks := make([]func(ctx context.Context, in flow.Result[R]) flow.Result[R], 0, len(rules))
		for _, rule := range rules {
			checks = append(checks, func(ctx context.Context, in flow.Result[R]) flow.Result[R] {
				return solo.AndValidate(ctx, in, rule)
			})
		}
		return solo.ValidateAll(ctx, flow.Success(rec), true, checks...)
	}
}
