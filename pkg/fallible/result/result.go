package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit is the no-payload success value. A Result[Unit, E] carries the same
// information as a Fallible[E].
type Unit struct{}

// Result holds either a success value of type T or a failure payload of
// type E, never both. Each value is stamped with an id and a creation time
// for tracing; neither participates in equality.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isFail    bool
}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isFail:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isFail:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try adapts a conventional (T, error) return into a Result.
func Try[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Fail[T, error](err)
	}
	return Success[T, error](value)
}

func (r Result[T, E]) Result() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.isFail
}

func (r Result[T, E]) IsFail() bool {
	return r.isFail
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// MustResult returns the success value, panicking on a failure. Calling it
// asserts success; a failure here is a programmer error.
func (r Result[T, E]) MustResult() T {
	if r.isFail {
		panic(fmt.Sprintf("result: called MustResult on a Fail value: %v", r.err))
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.isFail {
		return fmt.Sprintf("Fail(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// Map transforms the success value to a new value
func Map[T, U, E any](r Result[T, E], onSuccess func(T) U) Result[U, E] {
	if r.isFail {
		return Fail[U, E](r.err)
	}
	return Success[U, E](onSuccess(r.value))
}

// MapErr transforms the failure payload, passing successes through unchanged
func MapErr[T, E, F any](r Result[T, E], onFail func(E) F) Result[T, F] {
	if !r.isFail {
		return Success[T, F](r.value)
	}
	return Fail[T, F](onFail(r.err))
}

// Switch moves from Result[T, E] to Result[U, E] via a result-returning
// function applied to the success value.
func Switch[T, U, E any](r Result[T, E], onSuccess func(T) Result[U, E]) Result[U, E] {
	if r.isFail {
		return Fail[U, E](r.err)
	}
	return onSuccess(r.value)
}

// Finally collapses the result to a final value
func Finally[T, E, Out any](r Result[T, E],
	onSuccess func(T) Out,
	onFail func(E) Out) Out {

	if r.isFail {
		return onFail(r.err)
	}
	return onSuccess(r.value)
}

// Equal reports payload equality: same variant and equal contents. The id
// and creation-time stamps are ignored.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.isFail != b.isFail {
		return false
	}
	if a.isFail {
		return a.err == b.err
	}
	return a.value == b.value
}
