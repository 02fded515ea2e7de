package batch

import (
	"iter"

	"github.com/ib-77/flow3/pkg/flow/stream"
)

// Batch is an ordered group of items with their cumulative size. A batch is
// immutable once emitted; every batch owns a fresh backing slice.
type Batch[T any] struct {
	items []T
	size  int
}

// Items returns the items in arrival order.
func (b Batch[T]) Items() []T {
	return b.items
}

// Size returns the cumulative size of the items.
func (b Batch[T]) Size() int {
	return b.size
}

func (b Batch[T]) Len() int {
	return len(b.items)
}

// Accumulator groups stream items into size-bounded batches. A batch is
// closed when its cumulative size has reached the capacity before the next
// item is appended, so the item that trips the threshold seeds the next
// batch and a single oversized item is still accepted into a fresh batch.
type Accumulator[T any] struct {
	capacity int
	sizeOf   func(T) int
}

// New builds an accumulator with the given capacity. New panics when the
// capacity is not positive or sizeOf is nil; a silently-wrong boundary is
// worse than failing at construction.
func New[T any](capacity int, sizeOf func(T) int) *Accumulator[T] {
	if capacity <= 0 {
		panic("batch: capacity must be positive")
	}
	if sizeOf == nil {
		panic("batch: sizeOf must not be nil")
	}
	return &Accumulator[T]{capacity: capacity, sizeOf: sizeOf}
}

// Feed drains s into batches lazily. The first item always opens the first
// batch; at exhaustion the in-progress batch is emitted even when below
// capacity. Concatenating the emitted batches reproduces the input order
// exactly.
func (a *Accumulator[T]) Feed(s *stream.Stream[T]) iter.Seq[Batch[T]] {
	return func(yield func(Batch[T]) bool) {
		first, ok := s.Advance().Get()
		if !ok {
			return
		}
		current := a.open(first)

		for {
			v, more := s.Advance().Get()
			if !more {
				break
			}

			if current.size >= a.capacity {
				if !yield(current) {
					return
				}
				current = a.open(v)
			} else {
				current.items = append(current.items, v)
				current.size += a.sizeOf(v)
			}
		}

		yield(current)
	}
}

// Collect materializes every batch Feed would emit.
func (a *Accumulator[T]) Collect(s *stream.Stream[T]) []Batch[T] {
	var batches []Batch[T]
	for b := range a.Feed(s) {
		batches = append(batches, b)
	}
	return batches
}

func (a *Accumulator[T]) open(seed T) Batch[T] {
	items := make([]T, 0, 1)
	items = append(items, seed)
	return Batch[T]{items: items, size: a.sizeOf(seed)}
}

// StringLen sizes a string item by its byte length.
func StringLen(s string) int {
	return len(s)
}
