// Package gapbuf implements a generic gap buffer: a sequence container
// optimized for text-editing workloads, where most mutations cluster
// around a single position.
//
// The backing allocation is split into a live prefix, a gap of unused
// capacity, and a live suffix. An insertion or deletion at the gap costs
// O(1) amortized; moving the edit position costs O(distance) because only
// the elements between the old and new gap location are copied. Random
// access stays O(1) through a position-to-slot bijection.
//
// Growth doubles capacity (seeded at 16) and commits the new storage in
// one step, so a failed allocation cannot leave a half-built buffer
// visible.
//
// Basic usage:
//
//	b := gapbuf.New[byte]()
//	b.InsertSlice(0, []byte("hello"))
//	b.Insert(5, '!')
//	_ = b.Elems() // "hello!"
//
// The package is single-threaded by design; callers needing concurrent
// access must provide their own synchronization.
package gapbuf
