// Package rmq answers range minimum queries over a static sequence
// in O(1) time per query after O(n) preprocessing.
//
// The sequence is turned into its Cartesian tree, the tree into an Euler tour
// whose depths change by exactly one per step, and the tour is indexed by a
// block decomposition that shares precomputed answers between blocks of the
// same shape. A plain SparseTable is also provided.
package rmq

import (
	"golang.org/x/exp/constraints"

	"github.com/AlexWan0/go-rmq/cartesian"
)

// Solver is the core of the library.
// It is read-only after construction and safe for concurrent queries.
type Solver[T constraints.Ordered] struct {
	tour *Tour[T]
	pm   *plusMinus
	num  uint64
}

// New builds a Solver over vals.
func New[T constraints.Ordered](vals []T) *Solver[T] {
	return newSolver(cartesian.New(vals))
}

func newSolver[T constraints.Ordered](t *cartesian.Tree[T]) *Solver[T] {
	tour := NewTour(t)
	return &Solver[T]{
		tour: tour,
		pm:   newPlusMinus(tour),
		num:  t.Size(),
	}
}

// Num returns the number of values in the sequence.
func (s *Solver[T]) Num() uint64 {
	return s.num
}

// Query returns the minimum of the values at positions
// min(left, right)...max(left, right), both ends inclusive.
//
// Positions must be < Num(); they are not checked and an out-of-range
// position panics.
func (s *Solver[T]) Query(left, right uint64) (val T, err error) {
	if s.num == 0 {
		return val, ErrEmpty
	}
	i, j := s.tour.First(left), s.tour.First(right)
	if i > j {
		i, j = j, i
	}
	return s.tour.Value(s.pm.argmin(i, j)), nil
}

// Tour returns the Euler tour the Solver is built on.
func (s *Solver[T]) Tour() *Tour[T] {
	return s.tour
}
