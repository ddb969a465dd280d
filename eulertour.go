package rmq

import (
	"github.com/hillbig/rsdic"
	"golang.org/x/exp/constraints"

	"github.com/AlexWan0/go-rmq/cartesian"
)

// Tour is the Euler tour of a Cartesian tree: the sequence of nodes met while
// walking down every edge and back up again.
//
// Depths along the tour change by exactly one per step, so the tour keeps only
// the direction of each step in a rank/select dictionary and derives depths from it.
type Tour[T constraints.Ordered] struct {
	steps  *rsdic.RSDic // bit p is set when depth rises from p to p+1
	ups    uint64       // = steps.Rank(steps.Num(), true)
	values []T          // value of the node at each tour position
	first  []uint32     // first tour position of each key
}

// frame is a node on the explicit traversal stack.
// state: 0 = not descended, 1 = left subtree done, 2 = both done.
type frame struct {
	id    cartesian.NodeID
	state uint8
}

// NewTour walks t iteratively, so tree height does not bound the goroutine stack.
// For n nodes the tour has 2n-1 positions.
func NewTour[T constraints.Ordered](t *cartesian.Tree[T]) *Tour[T] {
	num := t.Size()
	tr := &Tour[T]{steps: rsdic.New()}
	if num == 0 {
		return tr
	}
	tr.values = make([]T, 0, 2*num-1)
	tr.first = make([]uint32, num)

	root := t.Root()
	tr.first[t.Key(root)] = 0
	tr.values = append(tr.values, t.Value(root))
	stack := make([]frame, 1, 64)
	stack[0] = frame{id: root}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		child := cartesian.End
		if top.state == 0 {
			top.state = 1
			child = t.Left(top.id)
		}
		if child == cartesian.End && top.state == 1 {
			top.state = 2
			child = t.Right(top.id)
		}
		if child != cartesian.End {
			tr.first[t.Key(child)] = uint32(len(tr.values))
			tr.push(true, t.Value(child))
			stack = append(stack, frame{id: child})
			continue
		}
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			tr.push(false, t.Value(stack[len(stack)-1].id))
		}
	}
	return tr
}

func (tr *Tour[T]) push(up bool, val T) {
	tr.steps.PushBack(up)
	if up {
		tr.ups++
	}
	tr.values = append(tr.values, val)
}

// Len returns the number of tour positions.
func (tr *Tour[T]) Len() uint64 {
	return uint64(len(tr.values))
}

// Depth returns the depth of the node at tour position i. The root has depth 0.
func (tr *Tour[T]) Depth(i uint64) uint64 {
	var ups uint64
	switch {
	case i == 0:
		return 0
	case i >= tr.steps.Num():
		ups = tr.ups
	default:
		ups = tr.steps.Rank(i, true)
	}
	return 2*ups - i
}

// Up reports whether the step from position p to p+1 goes one level deeper.
// Requires p+1 < Len().
func (tr *Tour[T]) Up(p uint64) bool {
	return tr.steps.Bit(p)
}

// Depths returns the whole depth sequence.
func (tr *Tour[T]) Depths() []uint64 {
	depths := make([]uint64, tr.Len())
	for i := uint64(1); i < tr.Len(); i++ {
		if tr.Up(i - 1) {
			depths[i] = depths[i-1] + 1
		} else {
			depths[i] = depths[i-1] - 1
		}
	}
	return depths
}

// Value returns the value at tour position i.
func (tr *Tour[T]) Value(i uint64) T {
	return tr.values[i]
}

// First returns the first tour position of key.
func (tr *Tour[T]) First(key uint64) uint64 {
	return uint64(tr.first[key])
}
