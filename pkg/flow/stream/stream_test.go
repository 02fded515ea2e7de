package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ib-77/flow3/pkg/flow"
)

func drain[T any](s *Stream[T]) []T {
	var out []T
	for v := range s.Seq() {
		out = append(out, v)
	}
	return out
}

func TestAdvance_ConsumesInOrder(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{1, 2, 3})

	for _, want := range []int{1, 2, 3} {
		v, ok := s.Advance().Get()
		if !ok || v != want {
			t.Fatalf("expected %d, got (%v, %v)", want, v, ok)
		}
	}

	if s.Advance().IsSome() {
		t.Fatalf("expected exhaustion after 3 elements")
	}
}

func TestAdvance_ExhaustionIsTerminal(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{1})
	s.Advance()

	for range 3 {
		if s.Advance().IsSome() {
			t.Fatalf("exhausted stream must keep returning None")
		}
	}
}

func TestPeek_Idempotent(t *testing.T) {
	t.Parallel()
	s := FromSlice([]string{"a", "b"})

	first := s.Peek()
	second := s.Peek()
	if first != second {
		t.Fatalf("consecutive peeks differ: %v vs %v", first, second)
	}
	if first.Value() != "a" {
		t.Fatalf("expected peek 'a', got %q", first.Value())
	}

	v, ok := s.Advance().Get()
	if !ok || v != "a" {
		t.Fatalf("peek must not consume; advance got (%v, %v)", v, ok)
	}
}

func TestPeek_ThenAdvanceDrainsBuffer(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{10, 20})

	if s.Peek().Value() != 10 {
		t.Fatalf("expected peek 10")
	}
	if got := drain(s); !cmp.Equal(got, []int{10, 20}) {
		t.Fatalf("remainder mismatch: %s", cmp.Diff([]int{10, 20}, got))
	}
}

func TestPeek_AtExhaustion(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{})
	if s.Peek().IsSome() {
		t.Fatalf("peek on empty stream must be None")
	}
	if s.Advance().IsSome() {
		t.Fatalf("advance on empty stream must be None")
	}
}

func TestFromSeq(t *testing.T) {
	t.Parallel()
	seq := func(yield func(int) bool) {
		for i := 1; i <= 4; i++ {
			if !yield(i) {
				return
			}
		}
	}

	s := FromSeq(seq)
	if got, want := drain(s), []int{1, 2, 3, 4}; !cmp.Equal(got, want) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}
}

func TestGenerate_Unbounded(t *testing.T) {
	t.Parallel()
	n := 0
	s := Generate(func() (int, bool) {
		n++
		return n, true
	})

	var got []int
	for range 5 {
		got = append(got, s.Advance().Value())
	}
	if want := []int{1, 2, 3, 4, 5}; !cmp.Equal(got, want) {
		t.Fatalf("mismatch: %s", cmp.Diff(want, got))
	}

	// the driver may stop pulling at any time; the stream imposes no
	// cleanup obligation
	s.Close()
	if s.Advance().IsSome() {
		t.Fatalf("closed stream must return None")
	}
}

func TestSeq_StopEarlyKeepsRemainder(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{1, 2, 3})

	for range s.Seq() {
		break
	}

	v, ok := s.Advance().Get()
	if !ok || v != 2 {
		t.Fatalf("expected remainder to continue at 2, got (%v, %v)", v, ok)
	}
}

func TestLookaheadSlot_SingleElement(t *testing.T) {
	t.Parallel()
	s := FromSlice([]int{7, 8, 9})

	// at most one element buffered: peek, peek, advance, advance must
	// yield 7 then 8 with no skips
	s.Peek()
	s.Peek()
	a := s.Advance()
	b := s.Advance()
	if a.Value() != 7 || b.Value() != 8 {
		t.Fatalf("expected 7 then 8, got %v then %v", a.Value(), b.Value())
	}
}

func TestOptionSlotDrivesBuffer(t *testing.T) {
	t.Parallel()
	// the lookahead contract is the Take/Replace contract of Option
	slot := flow.None[int]()
	if prev := slot.Replace(1); prev.IsSome() {
		t.Fatalf("expected empty slot")
	}
	if v := slot.Take(); v.Value() != 1 || slot.IsSome() {
		t.Fatalf("take must empty the slot")
	}
}
