package check

import (
	"context"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Chain threads a Fallible[E] through a sequence of checks, skipping every
// step after the first failure.
type Chain[E any] struct {
	ctx context.Context
	res fallible.Fallible[E]
}

// Begin opens a chain in the Success state.
func Begin[E any](ctx context.Context) Chain[E] {
	return Chain[E]{ctx: ctx, res: fallible.Success[E]()}
}

func Start[E any](ctx context.Context, f fallible.Fallible[E]) Chain[E] {
	return Chain[E]{ctx: ctx, res: f}
}

func (c Chain[E]) Result() fallible.Fallible[E] {
	return c.res
}

// Then runs the next check unless the chain has already failed.
func (c Chain[E]) Then(next func(ctx context.Context) fallible.Fallible[E]) Chain[E] {
	if c.res.IsFail() {
		return c
	}
	return Chain[E]{ctx: c.ctx, res: next(c.ctx)}
}

// ThenValidate runs a predicate check against input unless the chain has
// already failed.
func ThenValidate[T, E any](c Chain[E], input T,
	validate func(ctx context.Context, in T) (ok bool, err E)) Chain[E] {

	if c.res.IsFail() {
		return c
	}
	return Chain[E]{ctx: c.ctx, res: Validate(c.ctx, input, validate)}
}

// And keeps the first failure among c and required; otherwise Success.
func (c Chain[E]) And(required Chain[E]) Chain[E] {
	if c.res.IsFail() {
		return c
	}
	return required
}

// Or passes if either chain passed, keeping c's failure when both failed.
func (c Chain[E]) Or(alternative Chain[E]) Chain[E] {
	if c.res.IsSuccess() || alternative.res.IsSuccess() {
		return Chain[E]{ctx: c.ctx, res: fallible.Success[E]()}
	}
	return c
}

// Map transforms the failure payload, leaving a passing chain untouched.
func Map[E, F any](c Chain[E], transform func(E) F) Chain[F] {
	return Chain[F]{ctx: c.ctx, res: fallible.Map(c.res, transform)}
}

// Ensure triggers side effects for the current state without changing it
func (c Chain[E]) Ensure(onSuccess func(context.Context), onFailure func(context.Context, E)) Chain[E] {
	if c.res.IsFail() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.MustErr())
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.ctx)
	}
	return c
}

// Finally collapses the chain to a final value
func Finally[E, Out any](c Chain[E],
	onSuccess func(ctx context.Context) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if c.res.IsFail() {
		return onFailure(c.ctx, c.res.MustErr())
	}
	return onSuccess(c.ctx)
}

// Validate turns a predicate over input into a check: Fail with the
// returned payload when the predicate rejects, Success otherwise.
func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (ok bool, err E)) fallible.Fallible[E] {

	if ok, err := validate(ctx, input); !ok {
		return fallible.Fail(err)
	}
	return fallible.Success[E]()
}

// FailIf is Validate with the polarity of the predicate flipped.
func FailIf[T, E any](ctx context.Context, input T,
	cond func(ctx context.Context, in T) bool, err E) fallible.Fallible[E] {

	if cond(ctx, input) {
		return fallible.Fail(err)
	}
	return fallible.Success[E]()
}
