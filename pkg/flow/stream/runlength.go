package stream

import "iter"

// Run is a group of consecutive equal elements.
type Run[T comparable] struct {
	Value T
	Count int
}

// Runs collapses consecutive equal elements of s into (value, count) groups,
// preserving the original order. The counts of all emitted runs sum to the
// number of elements pulled from the stream.
func Runs[T comparable](s *Stream[T]) iter.Seq[Run[T]] {
	return func(yield func(Run[T]) bool) {
		for {
			v, ok := s.Advance().Get()
			if !ok {
				return
			}

			count := 1
			for {
				next, more := s.Peek().Get()
				if !more || next != v {
					break
				}
				s.Advance()
				count++
			}

			if !yield(Run[T]{Value: v, Count: count}) {
				return
			}
		}
	}
}
