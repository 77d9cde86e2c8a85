package Trees

import "cmp"

// Iterator is a cursor over the nodes of an RBTree in sorted order. The
// zero value is the End cursor. Cursors are values; stepping returns a
// new cursor and never mutates the tree. A cursor is invalidated only by
// erasing the node it references.
type Iterator[T cmp.Ordered] struct {
	n *node[T]
}

// Valid reports whether the cursor references a live node, i.e. is not
// the End cursor.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Item returns the referenced value. The value is a copy: mutating an
// element in place would silently break the ordering invariant, so no
// reference into the tree is handed out. Item mustn't be called on the
// End cursor.
func (it Iterator[T]) Item() T {
	return it.n.v
}

// Next returns the cursor to the in-order successor: the leftmost node
// of the right subtree, or the first ancestor reached from a left
// child. Stepping past the largest element, or stepping End, yields End.
// Time: amortized O(1)
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{succ(it.n)}
}

// Prev is the mirror of Next. Stepping before the smallest element, or
// stepping End, yields End.
// Time: amortized O(1)
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{pred(it.n)}
}

// Eq reports whether two cursors are at the same position. Equality is
// by stored value, not node identity: two distinct nodes holding equal
// values compare equal, which is observable when duplicates are allowed.
// Two End cursors are equal; End never equals a live cursor.
func (it Iterator[T]) Eq(o Iterator[T]) bool {
	if it.n == nil || o.n == nil {
		return it.n == o.n
	}
	return it.n.v == o.n.v
}

// CIterator is the cursor of a CRBTree. It behaves exactly like
// Iterator except that position equality uses Ordered.Equals.
type CIterator[T Ordered[T]] struct {
	n *node[T]
}

// Valid reports whether the cursor references a live node.
func (it CIterator[T]) Valid() bool {
	return it.n != nil
}

// Item returns a copy of the referenced value. Mustn't be called on the
// End cursor.
func (it CIterator[T]) Item() T {
	return it.n.v
}

// Next returns the cursor to the in-order successor.
func (it CIterator[T]) Next() CIterator[T] {
	if it.n == nil {
		return it
	}
	return CIterator[T]{succ(it.n)}
}

// Prev returns the cursor to the in-order predecessor.
func (it CIterator[T]) Prev() CIterator[T] {
	if it.n == nil {
		return it
	}
	return CIterator[T]{pred(it.n)}
}

// Eq reports whether two cursors are at the same position, comparing
// stored values with Equals; see Iterator.Eq for the duplicate caveat.
func (it CIterator[T]) Eq(o CIterator[T]) bool {
	if it.n == nil || o.n == nil {
		return it.n == o.n
	}
	return it.n.v.Equals(o.n.v)
}
