package fallible

import (
	"github.com/ib-77/fallible/pkg/fallible/option"
	"github.com/ib-77/fallible/pkg/fallible/result"
)

// Option converts to the optional-value form: Success becomes None and
// Fail(e) becomes Some(e). Lossless; FromOption inverts it.
func (f Fallible[E]) Option() option.Option[E] {
	return f.Err()
}

// FromOption converts from the optional-value form: None becomes Success
// and Some(e) becomes Fail(e). Lossless; Option inverts it.
func FromOption[E any](o option.Option[E]) Fallible[E] {
	if e, ok := o.Get(); ok {
		return Fail(e)
	}
	return Success[E]()
}

// Result converts to the fallible-value form with a unit success payload:
// Success becomes Success(Unit{}) and Fail(e) becomes Fail(e).
func (f Fallible[E]) Result() result.Result[result.Unit, E] {
	if f.isFail {
		return result.Fail[result.Unit, E](f.err)
	}
	return result.Success[result.Unit, E](result.Unit{})
}

// FromResult converts from a fallible value whose success payload is unit.
// Inverse of Result.
func FromResult[E any](r result.Result[result.Unit, E]) Fallible[E] {
	if r.IsFail() {
		return Fail(r.Err())
	}
	return Success[E]()
}

// ErrOrValue converts to a fallible value, installing value as the success
// payload: Success becomes Success(value) and Fail(e) becomes Fail(e).
func ErrOrValue[T, E any](f Fallible[E], value T) result.Result[T, E] {
	if f.isFail {
		return result.Fail[T, E](f.err)
	}
	return result.Success[T, E](value)
}

// Discard converts a fallible value with a non-unit success payload,
// dropping that payload: Success(_) becomes Success and Fail(e) becomes
// Fail(e). The drop is deliberate and only available under this name;
// no implicit conversion exists in this direction.
func Discard[T, E any](r result.Result[T, E]) Fallible[E] {
	if r.IsFail() {
		return Fail(r.Err())
	}
	return Success[E]()
}
