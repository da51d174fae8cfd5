package option

import "fmt"

// Option holds either zero or one value of type E.
// The zero value of Option is None.
type Option[E any] struct {
	value   E
	present bool
}

func Some[E any](value E) Option[E] {
	return Option[E]{
		value:   value,
		present: true,
	}
}

func None[E any]() Option[E] {
	return Option[E]{}
}

func (o Option[E]) IsSome() bool {
	return o.present
}

func (o Option[E]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it is present.
func (o Option[E]) Get() (E, bool) {
	return o.value, o.present
}

// OrElse returns the contained value, or fallback when the option is None.
func (o Option[E]) OrElse(fallback E) E {
	if o.present {
		return o.value
	}
	return fallback
}

// MustGet returns the contained value.
//
// It panics when the option is None: calling it asserts presence, so an
// empty option is a broken precondition in the caller, not a runtime
// failure to recover from.
func (o Option[E]) MustGet() E {
	if !o.present {
		panic("option: called MustGet on a None value")
	}
	return o.value
}

// Map transforms the contained value, passing None through unchanged.
// The transform is never invoked on None.
func Map[E, F any](o Option[E], transform func(E) F) Option[F] {
	if !o.present {
		return None[F]()
	}
	return Some(transform(o.value))
}

func (o Option[E]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
