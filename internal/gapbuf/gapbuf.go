package gapbuf

import "errors"

// ErrOutOfRange indicates a logical position outside the valid buffer range.
var ErrOutOfRange = errors.New("position out of range")

// seedCapacity is the initial allocation when an empty buffer first grows.
const seedCapacity = 16

// Buffer is a gap buffer: a contiguous allocation split into a live prefix,
// an unused gap, and a live suffix. Insertions and deletions near the gap
// cost O(1) amortized; relocating the gap costs O(distance moved), not
// O(size). Positions in the public API are logical: 0..Len(), independent
// of where the gap sits.
//
// The zero value is an empty buffer with no allocation, ready to use.
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	buf      []T
	gapStart int
	gapEnd   int
}

// New creates an empty buffer. No storage is allocated until the first
// insertion.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// NewWithCapacity creates an empty buffer with room for n elements.
func NewWithCapacity[T any](n int) *Buffer[T] {
	b := &Buffer[T]{}
	b.Reserve(n)
	return b
}

// FromSlice creates a buffer holding a copy of s.
func FromSlice[T any](s []T) *Buffer[T] {
	b := &Buffer[T]{}
	b.AssignSlice(s)
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	return len(b.buf) - (b.gapEnd - b.gapStart)
}

// Cap returns the number of elements the buffer can hold without
// reallocating.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// IsEmpty returns true if the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.Len() == 0
}

// GapStart returns the logical position of the gap. Exposed for stats and
// benchmarks; callers cannot observe the gap through the element API.
func (b *Buffer[T]) GapStart() int {
	return b.gapStart
}

// GapLen returns the current size of the gap.
func (b *Buffer[T]) GapLen() int {
	return b.gapEnd - b.gapStart
}

// physical maps a logical position to its storage index.
func (b *Buffer[T]) physical(pos int) int {
	if pos < b.gapStart {
		return pos
	}
	return pos + (b.gapEnd - b.gapStart)
}

// At returns the element at logical position pos.
func (b *Buffer[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= b.Len() {
		var zero T
		return zero, ErrOutOfRange
	}
	return b.buf[b.physical(pos)], nil
}

// Get returns the element at pos without a bounds check on the logical
// size. Passing a position outside [0, Len()) is a caller contract
// violation; it may panic or read a gap slot.
func (b *Buffer[T]) Get(pos int) T {
	return b.buf[b.physical(pos)]
}

// Set replaces the element at logical position pos.
func (b *Buffer[T]) Set(pos int, v T) error {
	if pos < 0 || pos >= b.Len() {
		return ErrOutOfRange
	}
	b.buf[b.physical(pos)] = v
	return nil
}

// moveGap relocates the gap so its start equals pos, block-moving only the
// elements between the old and new location. Cost is proportional to the
// distance moved.
func (b *Buffer[T]) moveGap(pos int) {
	if pos == b.gapStart {
		return
	}
	if pos < b.gapStart {
		n := b.gapStart - pos
		copy(b.buf[b.gapEnd-n:b.gapEnd], b.buf[pos:b.gapStart])
		b.gapStart = pos
		b.gapEnd -= n
	} else {
		n := pos - b.gapStart
		copy(b.buf[b.gapStart:b.gapStart+n], b.buf[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// grow reallocates to at least minCap elements, doubling from the current
// capacity (seed 16 when empty). The new storage is fully populated before
// any receiver field changes: the live prefix and suffix are copied into
// the leading slots and the gap is placed at the end, then the new state
// is committed in one step. A failed allocation therefore leaves the old
// buffer untouched.
func (b *Buffer[T]) grow(minCap int) {
	newCap := seedCapacity
	if len(b.buf) > 0 {
		newCap = len(b.buf) * 2
	}
	if newCap < minCap {
		newCap = minCap
	}

	nb := make([]T, newCap)
	n := copy(nb, b.buf[:b.gapStart])
	n += copy(nb[n:], b.buf[b.gapEnd:])

	b.buf = nb
	b.gapStart = n
	b.gapEnd = newCap
}

// ensureGap guarantees the gap can absorb n more elements.
func (b *Buffer[T]) ensureGap(n int) {
	if b.gapEnd-b.gapStart < n {
		b.grow(b.Len() + n)
	}
}

// Insert inserts v at logical position pos (0 <= pos <= Len()). Elements
// previously at pos.. shift right by one. Returns an iterator to the
// inserted element.
func (b *Buffer[T]) Insert(pos int, v T) (Iterator[T], error) {
	if pos < 0 || pos > b.Len() {
		return Iterator[T]{}, ErrOutOfRange
	}
	b.ensureGap(1)
	b.moveGap(pos)
	b.buf[b.gapStart] = v
	b.gapStart++
	return b.IterAt(pos), nil
}

// InsertSlice inserts a copy of vs starting at logical position pos.
// Returns an iterator to the first inserted element.
func (b *Buffer[T]) InsertSlice(pos int, vs []T) (Iterator[T], error) {
	if pos < 0 || pos > b.Len() {
		return Iterator[T]{}, ErrOutOfRange
	}
	if len(vs) == 0 {
		return b.IterAt(pos), nil
	}
	b.ensureGap(len(vs))
	b.moveGap(pos)
	copy(b.buf[b.gapStart:], vs)
	b.gapStart += len(vs)
	return b.IterAt(pos), nil
}

// Erase removes the element at logical position pos. Returns an iterator
// to the position that followed it.
func (b *Buffer[T]) Erase(pos int) (Iterator[T], error) {
	return b.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in the logical range [first, last).
// The range end is clamped to the live length, so the removed count is
// bounded by the remaining suffix. Returns an iterator to the position
// following the removed range.
func (b *Buffer[T]) EraseRange(first, last int) (Iterator[T], error) {
	if first < 0 || first > last || first > b.Len() {
		return Iterator[T]{}, ErrOutOfRange
	}
	if last > b.Len() {
		last = b.Len()
	}
	if first == last {
		return b.IterAt(first), nil
	}
	b.moveGap(first)
	count := last - first
	// Release the erased elements so the GC can reclaim what they
	// referenced; gap slots are dead storage.
	var zero T
	for i := b.gapEnd; i < b.gapEnd+count; i++ {
		b.buf[i] = zero
	}
	b.gapEnd += count
	return b.IterAt(first), nil
}

// PushBack appends v.
func (b *Buffer[T]) PushBack(v T) {
	b.ensureGap(1)
	b.moveGap(b.Len())
	b.buf[b.gapStart] = v
	b.gapStart++
}

// PopBack removes and returns the last element. Returns false if the
// buffer is empty.
func (b *Buffer[T]) PopBack() (T, bool) {
	var zero T
	n := b.Len()
	if n == 0 {
		return zero, false
	}
	v := b.Get(n - 1)
	if _, err := b.EraseRange(n-1, n); err != nil {
		return zero, false
	}
	return v, true
}

// Reserve guarantees capacity for at least n elements without a
// reallocation on later growth up to that bound. It never shrinks.
func (b *Buffer[T]) Reserve(n int) {
	if n > len(b.buf) {
		b.grow(n)
	}
}

// Resize grows the buffer with zero values or shrinks it by removing
// trailing elements, so its length becomes exactly n.
func (b *Buffer[T]) Resize(n int) {
	var zero T
	b.ResizeWith(n, zero)
}

// ResizeWith is Resize with an explicit fill value for new slots.
func (b *Buffer[T]) ResizeWith(n int, fill T) {
	if n < 0 {
		n = 0
	}
	cur := b.Len()
	switch {
	case n > cur:
		b.ensureGap(n - cur)
		b.moveGap(cur)
		for i := cur; i < n; i++ {
			b.buf[b.gapStart] = fill
			b.gapStart++
		}
	case n < cur:
		b.EraseRange(n, cur) //nolint:errcheck // range is valid by construction
	}
}

// Clear removes all elements. Capacity is retained: the whole allocation
// becomes gap.
func (b *Buffer[T]) Clear() {
	var zero T
	for i := 0; i < b.gapStart; i++ {
		b.buf[i] = zero
	}
	for i := b.gapEnd; i < len(b.buf); i++ {
		b.buf[i] = zero
	}
	b.gapStart = 0
	b.gapEnd = len(b.buf)
}

// AssignSlice replaces the contents with a copy of vs.
func (b *Buffer[T]) AssignSlice(vs []T) {
	b.Clear()
	if len(vs) == 0 {
		return
	}
	b.Reserve(len(vs))
	copy(b.buf, vs)
	b.gapStart = len(vs)
	b.gapEnd = len(b.buf)
}

// AssignFill replaces the contents with n copies of v.
func (b *Buffer[T]) AssignFill(n int, v T) {
	b.Clear()
	if n <= 0 {
		return
	}
	b.Reserve(n)
	for i := 0; i < n; i++ {
		b.buf[i] = v
	}
	b.gapStart = n
	b.gapEnd = len(b.buf)
}

// Clone returns an independent buffer with an equivalent logical sequence.
// The clone's gap sits at the end of its allocation.
func (b *Buffer[T]) Clone() *Buffer[T] {
	nb := make([]T, len(b.buf))
	n := copy(nb, b.buf[:b.gapStart])
	n += copy(nb[n:], b.buf[b.gapEnd:])
	return &Buffer[T]{buf: nb, gapStart: n, gapEnd: len(nb)}
}

// Swap exchanges the contents of two buffers in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.buf, other.buf = other.buf, b.buf
	b.gapStart, other.gapStart = other.gapStart, b.gapStart
	b.gapEnd, other.gapEnd = other.gapEnd, b.gapEnd
}

// ShrinkToFit drops excess capacity by swapping in a compact copy.
func (b *Buffer[T]) ShrinkToFit() {
	if b.Len() == len(b.buf) {
		return
	}
	nb := make([]T, b.Len())
	n := copy(nb, b.buf[:b.gapStart])
	copy(nb[n:], b.buf[b.gapEnd:])
	b.buf = nb
	b.gapStart = len(nb)
	b.gapEnd = len(nb)
}

// Elems returns a freshly allocated slice holding the logical sequence:
// a materialized snapshot with the gap flattened away.
func (b *Buffer[T]) Elems() []T {
	out := make([]T, b.Len())
	n := copy(out, b.buf[:b.gapStart])
	copy(out[n:], b.buf[b.gapEnd:])
	return out
}

// Slice returns a copy of the logical range [first, last). Bounds are
// clamped to the buffer.
func (b *Buffer[T]) Slice(first, last int) []T {
	if first < 0 {
		first = 0
	}
	if last > b.Len() {
		last = b.Len()
	}
	if first >= last {
		return nil
	}
	out := make([]T, 0, last-first)
	if first < b.gapStart {
		hi := last
		if hi > b.gapStart {
			hi = b.gapStart
		}
		out = append(out, b.buf[first:hi]...)
	}
	if last > b.gapStart {
		lo := first
		if lo < b.gapStart {
			lo = b.gapStart
		}
		gap := b.gapEnd - b.gapStart
		out = append(out, b.buf[lo+gap:last+gap]...)
	}
	return out
}
