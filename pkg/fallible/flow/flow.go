package flow

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/result"
)

// escape carries a propagated failure payload from a Check call up to the
// enclosing scope runner.
type escape struct {
	payload any
}

// Check propagates f: on Fail it exits the enclosing scope immediately
// with the failure payload, on Success it is a no-op and control continues
// with the next statement. Nothing is bound on Success; it carries no
// value to extract.
//
// Check must run inside a scope opened by Run, RunResult or RunWith whose
// payload type is E. A payload that reaches a scope of another type resumes
// panicking: crossing a payload-type boundary requires CheckMap.
func Check[E any](f fallible.Fallible[E]) {
	if e, ok := f.Err().Get(); ok {
		panic(escape{payload: e})
	}
}

// CheckMap is Check across a payload-type boundary: on Fail the payload is
// converted with conv and propagates as the enclosing scope's payload type
// F. conv is never invoked on Success.
func CheckMap[E, F any](f fallible.Fallible[E], conv func(E) F) {
	if e, ok := f.Err().Get(); ok {
		panic(escape{payload: conv(e)})
	}
}

// CheckValue lets a scope call into fallible-value code: it returns the
// success value of r, or propagates r's failure payload out of the
// enclosing scope.
func CheckValue[T, E any](r result.Result[T, E]) T {
	if r.IsFail() {
		panic(escape{payload: r.Err()})
	}
	return r.Result()
}

// Run opens a propagation scope whose enclosing type is Fallible[E] and
// executes fn inside it. A failure propagated by a Check variant terminates
// fn at that statement and becomes the Fail result of Run; otherwise Run
// returns fn's value.
func Run[E any](fn func() fallible.Fallible[E]) fallible.Fallible[E] {
	return RunWith(fn, func(payload any) (fallible.Fallible[E], bool) {
		e, ok := payload.(E)
		if !ok {
			return fallible.Fallible[E]{}, false
		}
		return fallible.Fail(e), true
	})
}

// RunResult opens a propagation scope whose enclosing type is the
// fallible-value type Result[T, E]. A propagated failure payload becomes
// its Fail variant; the scope body itself produces the success value, since
// a propagated Success carries nothing to install as one.
func RunResult[T, E any](fn func() result.Result[T, E]) result.Result[T, E] {
	return RunWith(fn, func(payload any) (result.Result[T, E], bool) {
		e, ok := payload.(E)
		if !ok {
			return result.Result[T, E]{}, false
		}
		return result.Fail[T, E](e), true
	})
}

// RunWith is the convert-and-propagate extension point: it opens a scope
// returning any result-like type R, using absorb to turn a propagated
// failure payload into R. When absorb reports that it cannot accept the
// payload, the payload resumes propagating to the next enclosing scope.
func RunWith[R any](fn func() R, absorb func(payload any) (R, bool)) (out R) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		esc, ok := r.(escape)
		if !ok {
			panic(r)
		}
		absorbed, ok := absorb(esc.payload)
		if !ok {
			panic(esc)
		}
		out = absorbed
	}()
	return fn()
}
