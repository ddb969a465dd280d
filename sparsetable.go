package rmq

import (
	"golang.org/x/exp/constraints"
)

// SparseTable answers range minimum queries over a static array in O(1)
// after O(n log n) preprocessing.
type SparseTable[T any] struct {
	levels [][]T // levels[k][i] = min of vals[i, i+2^k)
	less   func(a, b T) bool
}

// NewSparseTable builds a SparseTable over vals. vals is copied.
func NewSparseTable[T constraints.Ordered](vals []T) *SparseTable[T] {
	return newSparseTableFunc(vals, func(a, b T) bool { return a < b })
}

func newSparseTableFunc[T any](vals []T, less func(a, b T) bool) *SparseTable[T] {
	st := &SparseTable[T]{less: less}
	num := uint64(len(vals))
	if num == 0 {
		return st
	}
	st.levels = make([][]T, log2Floor(num)+1)
	st.levels[0] = append(make([]T, 0, num), vals...)
	for k := 1; k < len(st.levels); k++ {
		half := uint64(1) << (k - 1)
		prev := st.levels[k-1]
		cur := make([]T, num-(half<<1)+1)
		for i := range cur {
			cur[i] = st.pick(prev[i], prev[uint64(i)+half])
		}
		st.levels[k] = cur
	}
	return st
}

// Num returns the number of values in the table.
func (st *SparseTable[T]) Num() uint64 {
	if len(st.levels) == 0 {
		return 0
	}
	return uint64(len(st.levels[0]))
}

// Min returns the minimum of vals[left...right], both ends inclusive.
func (st *SparseTable[T]) Min(left, right uint64) (val T, err error) {
	if left > right {
		return val, ErrInvalidRange
	}
	if st.Num() == 0 {
		return val, ErrEmpty
	}
	if right >= st.Num() {
		return val, ErrOutOfRange
	}
	return st.min(left, right), nil
}

// min is Min without checks; requires left <= right < Num().
func (st *SparseTable[T]) min(left, right uint64) T {
	k := log2Floor(right - left + 1)
	level := st.levels[k]
	return st.pick(level[left], level[right-(1<<k)+1])
}

// pick returns the smaller of a and b, a on ties.
func (st *SparseTable[T]) pick(a, b T) T {
	if st.less(b, a) {
		return b
	}
	return a
}
