// Package fallible provides Fallible[E], an optional-value type with
// inverted short-circuit semantics: a check either succeeds with nothing to
// report or fails with a payload E.
//
// Propagating a Fallible exits early on the failure branch and is a no-op
// on the success branch — the inverse of an optional value, where absence
// is what propagates. See the flow package for the propagation scopes and
// the check package for fluent chaining:
//
//	failsIfZero := func(n uint) fallible.Fallible[string] {
//		if n == 0 {
//			return fallible.Fail("number is zero")
//		}
//		return fallible.Success[string]()
//	}
//
//	res := flow.Run(func() fallible.Fallible[string] {
//		flow.Check(failsIfZero(3))
//		flow.Check(failsIfZero(0)) // exits here
//		flow.Check(failsIfZero(10))
//		return fallible.Success[string]()
//	})
//	// res is Fail("number is zero")
package fallible

import (
	"cmp"
	"fmt"

	"github.com/ib-77/fallible/pkg/fallible/option"
)

// Fallible holds either nothing (Success) or one failure payload of type E
// (Fail). Exactly one variant is active. The zero value is Success.
type Fallible[E any] struct {
	err    E
	isFail bool
}

// Success returns the no-payload variant: the operation completed with
// nothing to report.
func Success[E any]() Fallible[E] {
	return Fallible[E]{}
}

// Fail returns the failure variant carrying err. Any payload is accepted;
// construction never fails.
func Fail[E any](err E) Fallible[E] {
	return Fallible[E]{
		err:    err,
		isFail: true,
	}
}

func (f Fallible[E]) IsSuccess() bool {
	return !f.isFail
}

func (f Fallible[E]) IsFail() bool {
	return f.isFail
}

// Err returns the failure payload as an optional value: Some on Fail,
// None on Success.
func (f Fallible[E]) Err() option.Option[E] {
	if !f.isFail {
		return option.None[E]()
	}
	return option.Some(f.err)
}

// ErrOr returns the failure payload, or fallback when f is Success.
func (f Fallible[E]) ErrOr(fallback E) E {
	if !f.isFail {
		return fallback
	}
	return f.err
}

// MustErr returns the failure payload.
//
// It panics when f is Success: calling it asserts that a failure was
// expected, so Success here signals a broken precondition in the caller,
// not a runtime condition to recover from.
func (f Fallible[E]) MustErr() E {
	if !f.isFail {
		panic("fallible: called MustErr on a Success value")
	}
	return f.err
}

// MustSuccess panics when f is Fail, including the payload in the
// diagnostic. On Success it is a no-op.
func (f Fallible[E]) MustSuccess() {
	if f.isFail {
		panic(fmt.Sprintf("fallible: called MustSuccess on a Fail value: %v", f.err))
	}
}

func (f Fallible[E]) String() string {
	if !f.isFail {
		return "Success"
	}
	return fmt.Sprintf("Fail(%v)", f.err)
}

// Map transforms the failure payload, rewrapping it as Fail. Success
// passes through unchanged and the transform is never invoked on it.
func Map[E, F any](f Fallible[E], transform func(E) F) Fallible[F] {
	if !f.isFail {
		return Success[F]()
	}
	return Fail(transform(f.err))
}

// Contains reports whether f is a Fail carrying a payload equal to err.
func Contains[E comparable](f Fallible[E], err E) bool {
	return f.isFail && f.err == err
}

// Equal reports variant-and-payload equality: Success equals Success, Fail
// equals Fail when the payloads are equal, and the variants never equal
// each other.
func Equal[E comparable](a, b Fallible[E]) bool {
	if a.isFail != b.isFail {
		return false
	}
	return !a.isFail || a.err == b.err
}

// EqualFunc is Equal with a caller-supplied payload equality.
func EqualFunc[E any](a, b Fallible[E], eq func(E, E) bool) bool {
	if a.isFail != b.isFail {
		return false
	}
	return !a.isFail || eq(a.err, b.err)
}

// Compare orders a and b: Success sorts before every Fail, and two Fail
// values order by their payloads.
func Compare[E cmp.Ordered](a, b Fallible[E]) int {
	return CompareFunc(a, b, cmp.Compare[E])
}

// CompareFunc is Compare with a caller-supplied payload comparison.
func CompareFunc[E any](a, b Fallible[E], compare func(E, E) int) int {
	switch {
	case !a.isFail && !b.isFail:
		return 0
	case !a.isFail:
		return -1
	case !b.isFail:
		return 1
	default:
		return compare(a.err, b.err)
	}
}

// Take moves the failure payload out of f, leaving Success behind. It
// returns Some with the payload if f was Fail, None otherwise.
func Take[E any](f *Fallible[E]) option.Option[E] {
	taken := f.Err()
	*f = Success[E]()
	return taken
}

// Flatten collapses a nested Fallible one level.
func Flatten[E any](f Fallible[Fallible[E]]) Fallible[E] {
	if !f.isFail {
		return Success[E]()
	}
	return f.err
}

// First returns the first failure among checks, or Success when every
// check passed.
func First[E any](checks ...Fallible[E]) Fallible[E] {
	for _, c := range checks {
		if c.isFail {
			return c
		}
	}
	return Success[E]()
}

// Join runs through all checks and gathers every failure payload, in
// order. It returns Success when none failed.
func Join[E any](checks ...Fallible[E]) Fallible[[]E] {
	var errs []E
	for _, c := range checks {
		if c.isFail {
			errs = append(errs, c.err)
		}
	}
	if len(errs) == 0 {
		return Success[[]E]()
	}
	return Fail(errs)
}
