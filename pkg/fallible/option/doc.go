// Package option provides the optional-value companion type Option[E]
// used by the fallible conversions.
//
// Highlights:
// - Some/None: construct an Option[E]
// - IsSome/IsNone/Get: query presence and read the value
// - OrElse/MustGet: extract with a fallback or assert presence
// - Map: transform the contained value without touching None
//
// Option is deliberately small: it exists so that Fallible[E] has a
// lossless value-or-absence form, not as a general optional library.
package option
