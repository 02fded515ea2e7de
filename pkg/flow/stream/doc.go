// Package stream provides a single-pass pull cursor with one element of
// lookahead, plus scanners built on top of it.
//
// A Stream[T] yields elements on demand via Advance and supports a
// non-consuming Peek backed by a single Option[T] slot. Exhaustion is
// signalled by None and is terminal. Streams are exclusively owned by their
// consumer; none of the operations are safe for concurrent use.
//
// Key operations:
// - FromSlice/FromSeq/Generate: construct over finite or unbounded sources
// - Advance: consume the next element (lookahead slot drained first)
// - Peek: inspect the next element without consuming; idempotent
// - Seq: range over the remainder as an iter.Seq
// - Runs: collapse consecutive equal elements into (value, count) groups
package stream
