package stream

import (
	"iter"

	"github.com/ib-77/flow3/pkg/flow"
)

// Stream is a single-pass pull cursor over a backing sequence with one
// element of lookahead. The lookahead slot, when occupied, always holds the
// value the next Advance would return.
type Stream[T any] struct {
	pull  func() (T, bool)
	stop  func()
	ahead flow.Option[T]
	done  bool
}

// Generate builds a stream over next, which reports false once the sequence
// is exhausted. The sequence may be unbounded.
func Generate[T any](next func() (T, bool)) *Stream[T] {
	return &Stream[T]{pull: next}
}

// FromSlice builds a finite stream over items. The slice is not copied; the
// caller must not mutate it while the stream is live.
func FromSlice[T any](items []T) *Stream[T] {
	cursor := 0
	return Generate(func() (T, bool) {
		if cursor >= len(items) {
			var zero T
			return zero, false
		}
		v := items[cursor]
		cursor++
		return v, true
	})
}

// FromSeq builds a stream over an iter.Seq. The underlying iterator is
// released when the stream is exhausted or closed.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	next, stop := iter.Pull(seq)
	s := Generate(next)
	s.stop = stop
	return s
}

// Advance consumes and returns the next element, draining the lookahead slot
// first. Exhaustion is terminal: once None is returned, every later call
// returns None.
func (s *Stream[T]) Advance() flow.Option[T] {
	if buffered := s.ahead.Take(); buffered.IsSome() {
		return buffered
	}
	return s.pullNext()
}

// Peek returns the next element without consuming it, filling the lookahead
// slot on first use. Consecutive calls return the same value and do not
// change what Advance returns.
func (s *Stream[T]) Peek() flow.Option[T] {
	if s.ahead.IsNone() {
		s.ahead = s.pullNext()
	}
	return s.ahead
}

// Seq ranges over the remaining elements of the stream. The stream is
// consumed as the sequence is iterated; stopping early leaves the remainder
// available for further pulls.
func (s *Stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Advance().Get()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Close releases the backing sequence. Pulling from a closed stream returns
// None.
func (s *Stream[T]) Close() {
	if !s.done {
		s.done = true
		if s.stop != nil {
			s.stop()
		}
	}
	s.ahead = flow.None[T]()
}

func (s *Stream[T]) pullNext() flow.Option[T] {
	if s.done {
		return flow.None[T]()
	}
	v, ok := s.pull()
	if !ok {
		s.done = true
		if s.stop != nil {
			s.stop()
		}
		return flow.None[T]()
	}
	return flow.Some(v)
}
