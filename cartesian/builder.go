package cartesian

import (
	"golang.org/x/exp/constraints"
)

// Builder builds a Tree from a sequence.
// A user calls PushBack()s followed by Build().
type Builder[T constraints.Ordered] struct {
	nodes []node[T]
	spine []NodeID // right spine of the tree built so far, root first
	built bool
}

// NewBuilder returns an empty Builder.
func NewBuilder[T constraints.Ordered]() *Builder[T] {
	return &Builder[T]{nodes: make([]node[T], 1)}
}

// New builds the Cartesian tree of vals.
func New[T constraints.Ordered](vals []T) *Tree[T] {
	b := &Builder[T]{
		nodes: make([]node[T], 1, len(vals)+1),
		spine: make([]NodeID, 0, 64),
	}
	for _, v := range vals {
		b.PushBack(v)
	}
	return b.Build()
}

// PushBack appends val with the next key.
// Spine nodes whose value is not less than val are popped; the last one popped
// becomes the left child of the new node, so among equal values the later one
// ends up as the ancestor.
func (b *Builder[T]) PushBack(val T) {
	if b.built {
		panic("cartesian: PushBack after Build")
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node[T]{value: val})

	last := End
	for len(b.spine) > 0 {
		top := b.spine[len(b.spine)-1]
		if b.nodes[top].value < val {
			break
		}
		last = top
		b.spine = b.spine[:len(b.spine)-1]
	}
	if last != End {
		b.nodes[id].left = last
		b.nodes[last].parent = id
	}
	if len(b.spine) > 0 {
		top := b.spine[len(b.spine)-1]
		b.nodes[top].right = id
		b.nodes[id].parent = top
	} else {
		b.nodes[id].parent = End
	}
	b.spine = append(b.spine, id)
}

// Build links the sentinel to the root and returns the tree.
// The Builder must not be used afterwards.
func (b *Builder[T]) Build() *Tree[T] {
	b.built = true
	t := &Tree[T]{nodes: b.nodes}
	if len(b.spine) > 0 {
		t.nodes[End].left = b.spine[0]
		t.begin = t.mostLeft(b.spine[0])
	}
	b.spine = nil
	return t
}
