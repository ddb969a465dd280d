package cartesian

import (
	"golang.org/x/exp/constraints"
)

// Iterator walks a Tree in key order. The zero value is not usable; get one from
// Tree.Iter or Tree.IterEnd.
type Iterator[T constraints.Ordered] struct {
	t *Tree[T]
	n NodeID
}

// Iter returns an Iterator positioned at the first node.
func (t *Tree[T]) Iter() Iterator[T] {
	return Iterator[T]{t, t.begin}
}

// IterEnd returns an Iterator positioned at the sentinel.
func (t *Tree[T]) IterEnd() Iterator[T] {
	return Iterator[T]{t, End}
}

// Valid reports whether it points at a node rather than the sentinel.
func (it *Iterator[T]) Valid() bool {
	return it.n != End
}

// Next moves to the successor.
func (it *Iterator[T]) Next() {
	it.n = it.t.Next(it.n)
}

// Prev moves to the predecessor. From the sentinel it moves to the last node.
func (it *Iterator[T]) Prev() {
	it.n = it.t.Prev(it.n)
}

// Node returns the current node.
func (it *Iterator[T]) Node() NodeID {
	return it.n
}

// Key of the current node. Only meaningful when Valid.
func (it *Iterator[T]) Key() uint64 {
	return it.t.Key(it.n)
}

// Value of the current node. Only meaningful when Valid.
func (it *Iterator[T]) Value() T {
	return it.t.Value(it.n)
}
