package flow

// Map transforms the contained value when present. fn is never invoked on
// None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[U]()
}

// AndThen chains a lookup that may itself come back empty. fn is never
// invoked on None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[U]()
}

// Pair groups the two values combined by Zip.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// Zip combines two options into one; the result is Some only when both are.
func Zip[T1, T2 any](a Option[T1], b Option[T2]) Option[Pair[T1, T2]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(Pair[T1, T2]{First: av, Second: bv})
	}
	return None[Pair[T1, T2]]()
}
