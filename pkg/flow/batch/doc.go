// Package batch groups a stream of measurable items into size-bounded
// batches.
//
// The boundary policy checks fullness before appending: once the current
// batch's cumulative size has reached the capacity, it is closed and the
// incoming item seeds the next batch. A batch may therefore exceed the
// nominal capacity by the contribution of its last appended item, and a
// single item larger than the capacity still lands in a batch of its own.
//
// Key operations:
// - New: construct an Accumulator (panics on non-positive capacity)
// - Feed: drain a stream into batches lazily
// - Collect: materialize all batches
package batch
