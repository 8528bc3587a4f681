package gapbuf

// Iterator is a random-access view of a logical position in a Buffer. It
// carries a snapshot of the gap boundaries taken at creation, so it maps
// logical to physical slots without consulting the owning buffer.
//
// Any structural mutation of the owner (Insert, Erase, a Reserve that
// reallocates, Assign, Clear, Swap) invalidates every previously obtained
// iterator except the one returned by that same call. Dereferencing a
// stale iterator is a caller contract violation: it may observe
// pre-mutation storage or report ErrOutOfRange.
type Iterator[T any] struct {
	owner    *Buffer[T]
	buf      []T
	pos      int
	gapStart int
	gapEnd   int
}

// Begin returns an iterator at logical position 0.
func (b *Buffer[T]) Begin() Iterator[T] {
	return b.IterAt(0)
}

// End returns an iterator one past the last element.
func (b *Buffer[T]) End() Iterator[T] {
	return b.IterAt(b.Len())
}

// IterAt returns an iterator at the given logical position. The position
// is not validated; Valid reports whether it addresses a live element.
func (b *Buffer[T]) IterAt(pos int) Iterator[T] {
	return Iterator[T]{
		owner:    b,
		buf:      b.buf,
		pos:      pos,
		gapStart: b.gapStart,
		gapEnd:   b.gapEnd,
	}
}

// Pos returns the iterator's logical position.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// size is the logical length of the snapshot.
func (it Iterator[T]) size() int {
	return len(it.buf) - (it.gapEnd - it.gapStart)
}

// Valid reports whether the iterator addresses a live element in its
// snapshot.
func (it Iterator[T]) Valid() bool {
	return it.pos >= 0 && it.pos < it.size()
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() (T, error) {
	if !it.Valid() {
		var zero T
		return zero, ErrOutOfRange
	}
	if it.pos < it.gapStart {
		return it.buf[it.pos], nil
	}
	return it.buf[it.pos+(it.gapEnd-it.gapStart)], nil
}

// Next advances the iterator and reports whether it still addresses a
// live element.
func (it *Iterator[T]) Next() bool {
	it.pos++
	return it.Valid()
}

// Prev steps the iterator back and reports whether it still addresses a
// live element.
func (it *Iterator[T]) Prev() bool {
	it.pos--
	return it.Valid()
}

// Add returns an iterator offset by n positions. n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Diff returns the distance in logical positions between two iterators
// over the same buffer.
func (it Iterator[T]) Diff(other Iterator[T]) int {
	return it.pos - other.pos
}

// Equal reports whether two iterators reference the same buffer at the
// same logical position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.owner == other.owner && it.pos == other.pos
}

// Less reports whether it precedes other within the same buffer.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.owner == other.owner && it.pos < other.pos
}
