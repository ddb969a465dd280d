// Package cartesian builds the Cartesian tree of a sequence: a binary tree that is
// a search tree on positions and a min-heap on values.
//
// The tree is built once and never changes afterwards. It exists to expose the
// tree shape for traversal, not to be searched by key.
package cartesian

import (
	"golang.org/x/exp/constraints"
)

// NodeID addresses a node in the tree's arena.
type NodeID uint32

// End is the one-past-the-end sentinel. Used as a link it means "no node".
// The sentinel's left link is the root.
const End NodeID = 0

// A node in the arena. The zero value is an unlinked node.
type node[T any] struct {
	left, right, parent NodeID
	value               T
}

// Tree is a Cartesian tree. Keys are input positions 0...Size().
// Every node's value is <= the values of both its children.
type Tree[T constraints.Ordered] struct {
	nodes []node[T] // nodes[0] is the sentinel, nodes[k+1] holds key k
	begin NodeID
}

// Size returns the number of nodes excluding the sentinel.
func (t *Tree[T]) Size() uint64 {
	return uint64(len(t.nodes) - 1)
}

// Root returns the root node, or End when the tree is empty.
func (t *Tree[T]) Root() NodeID {
	return t.nodes[End].left
}

// Left returns the left child of n, or End.
func (t *Tree[T]) Left(n NodeID) NodeID {
	return t.nodes[n].left
}

// Right returns the right child of n, or End.
func (t *Tree[T]) Right(n NodeID) NodeID {
	return t.nodes[n].right
}

// Parent returns the parent of n. The root's parent is End.
func (t *Tree[T]) Parent(n NodeID) NodeID {
	return t.nodes[n].parent
}

// Key returns the input position of n.
func (t *Tree[T]) Key(n NodeID) uint64 {
	return uint64(n) - 1
}

// Value returns the value stored at n.
func (t *Tree[T]) Value(n NodeID) T {
	return t.nodes[n].value
}

// Node returns the node holding key.
func (t *Tree[T]) Node(key uint64) NodeID {
	return NodeID(key + 1)
}

// Begin returns the node with the smallest key, or End when empty.
func (t *Tree[T]) Begin() NodeID {
	return t.begin
}

// End returns the sentinel.
func (t *Tree[T]) End() NodeID {
	return End
}

// Next returns the in-order successor of n. The successor of the last node is End,
// and so is the successor of End.
func (t *Tree[T]) Next(n NodeID) NodeID {
	if n == End {
		return End
	}
	if r := t.nodes[n].right; r != End {
		return t.mostLeft(r)
	}
	p := t.nodes[n].parent
	for p != End && t.nodes[p].right == n {
		n, p = p, t.nodes[p].parent
	}
	return p
}

// Prev returns the in-order predecessor of n. Prev(End) is the last node and
// the predecessor of the first node is End.
func (t *Tree[T]) Prev(n NodeID) NodeID {
	if l := t.nodes[n].left; l != End {
		return t.mostRight(l)
	}
	if n == End {
		return End
	}
	p := t.nodes[n].parent
	for p != End && t.nodes[p].left == n {
		n, p = p, t.nodes[p].parent
	}
	return p
}

func (t *Tree[T]) mostLeft(n NodeID) NodeID {
	for t.nodes[n].left != End {
		n = t.nodes[n].left
	}
	return n
}

func (t *Tree[T]) mostRight(n NodeID) NodeID {
	for t.nodes[n].right != End {
		n = t.nodes[n].right
	}
	return n
}

// InOrder calls f on every node in key order until f returns false.
func (t *Tree[T]) InOrder(f func(key uint64, v T) bool) {
	for n := t.begin; n != End; n = t.Next(n) {
		if !f(t.Key(n), t.nodes[n].value) {
			return
		}
	}
}

// Corrupt reports whether the tree breaks one of its invariants: consistent
// parent links, min-heap order on values, and in-order keys 0...Size().
func (t *Tree[T]) Corrupt() bool {
	if len(t.nodes) == 0 {
		return true
	}
	root := t.Root()
	if root == End {
		return len(t.nodes) != 1 || t.begin != End
	}
	if t.nodes[root].parent != End {
		return true
	}
	for i := 1; i < len(t.nodes); i++ {
		n := &t.nodes[i]
		for _, c := range [2]NodeID{n.left, n.right} {
			if c == End {
				continue
			}
			if int(c) >= len(t.nodes) || t.nodes[c].parent != NodeID(i) || t.nodes[c].value < n.value {
				return true
			}
		}
	}
	want := uint64(0)
	for n := t.begin; n != End; n = t.Next(n) {
		if want >= t.Size() || t.Key(n) != want {
			return true
		}
		want++
	}
	return want != t.Size()
}
