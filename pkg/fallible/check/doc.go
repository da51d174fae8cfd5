// Package check provides a minimal fluent Chain[E] for synchronous
// sequencing of Fallible[E] checks.
//
// It keeps the API surface very small:
// - Begin/Start: create a Chain
// - Then/ThenValidate: run the next check unless one already failed
// - And/Or: compose chains by first-failure or first-success
// - Map: transform the failure payload
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
// - Validate/FailIf: turn predicates into checks
//
// The context is handed through to callbacks unchanged; the chain itself
// attaches no cancellation semantics to it.
package check
