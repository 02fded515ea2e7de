package flow

// Option is a value container with explicit presence: Some holds a value,
// None holds nothing. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Value returns the contained value, or the zero value of T when None.
func (o Option[T]) Value() T {
	return o.value
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value; the fallback is computed only
// when None.
func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.present {
		return o.value
	}
	return fallback()
}

// Filter keeps the value only when the predicate holds.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns o unchanged when Some; the alternative is computed only
// when None.
func (o Option[T]) OrElse(alternative func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alternative()
}

// Take moves the content out of the slot, leaving None behind.
func (o *Option[T]) Take() Option[T] {
	out := *o
	*o = Option[T]{}
	return out
}

// Replace stores v in the slot and returns the previous content.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := *o
	*o = Option[T]{value: v, present: true}
	return prev
}
