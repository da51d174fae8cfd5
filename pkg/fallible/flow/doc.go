// Package flow implements short-circuit propagation for Fallible values.
//
// A scope is a function literal executed by one of the Run variants. Inside
// it, Check either does nothing (Success) or terminates the scope at that
// statement (Fail), converting the payload into the scope's return value.
// The direction is inverted relative to an optional value: the failure
// branch propagates, the success branch continues.
//
// Highlights:
// - Run: scope returning Fallible[E]
// - RunResult: scope returning Result[T, E] (cross-type propagation)
// - RunWith: scope returning any result-like type via an absorber
// - Check: propagate-or-continue on a Fallible
// - CheckMap: propagate across a payload-type boundary via a conversion
// - CheckValue: call (T, failure)-shaped code, yielding T or propagating
//
// Propagation is all-or-nothing per call and confined to the goroutine
// that opened the scope.
package flow
