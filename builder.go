package rmq

import (
	"golang.org/x/exp/constraints"

	"github.com/AlexWan0/go-rmq/cartesian"
)

// Builder builds a Solver from a sequence read once, front to back.
// A user calls PushBack()s followed by Build().
type Builder[T constraints.Ordered] struct {
	tree *cartesian.Builder[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T constraints.Ordered]() *Builder[T] {
	return &Builder[T]{cartesian.NewBuilder[T]()}
}

// PushBack appends val to the sequence.
func (b *Builder[T]) PushBack(val T) {
	b.tree.PushBack(val)
}

// Build returns the Solver. The Builder must not be used afterwards.
func (b *Builder[T]) Build() *Solver[T] {
	return newSolver(b.tree.Build())
}
