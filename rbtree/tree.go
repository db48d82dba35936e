package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Tree is a red-black tree of unique keys. The zero value is an empty tree
// ready to use.
//
// Trees are not safe for concurrent use. Insertions have to be serialized
// with respect to other insertions and to readers.
type Tree[K constraints.Ordered] struct {
	nodes []node[K] // arena, slot 0 reserved
	root  Pos
}

// New creates an empty tree.
func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// Grow makes room for at least n more nodes without re-allocating the arena.
func (t *Tree[K]) Grow(n int) {
	if n <= 0 {
		return
	}
	need := len(t.nodes) + n
	if len(t.nodes) == 0 {
		need++
	}
	if cap(t.nodes) >= need {
		return
	}
	nodes := make([]node[K], len(t.nodes), need)
	copy(nodes, t.nodes)
	t.nodes = nodes
}

// Clear removes all keys. All positions handed out before are invalid
// afterwards.
func (t *Tree[K]) Clear() {
	t.nodes = t.nodes[:0]
	t.root = NoPos
}

// Root returns the position of the root node, or NoPos for an empty tree.
func (t *Tree[K]) Root() Pos {
	return t.root
}

// Find searches for key. It returns the position of the node holding key and
// true, or NoPos and false if key is not contained in the tree.
func (t *Tree[K]) Find(key K) (Pos, bool) {
	p := t.root
	for p != NoPos {
		n := &t.nodes[p]
		switch {
		case key < n.key:
			p = n.left
		case n.key < key:
			p = n.right
		default:
			return p, true
		}
	}
	return NoPos, false
}

// Insert inserts key, if not already present. It returns the position of the
// node holding key, and a flag telling wether a new node has been created.
// Inserting a key twice leaves the tree unchanged and returns the position of
// the node created by the first insertion.
func (t *Tree[K]) Insert(key K) (Pos, bool) {
	parent, s := NoPos, isRoot
	p := t.root
	for p != NoPos {
		parent = p
		n := &t.nodes[p]
		switch {
		case key < n.key:
			p, s = n.left, isLeftChild
		case n.key < key:
			p, s = n.right, isRightChild
		default:
			return p, false
		}
	}
	p = t.alloc(key)
	t.nodes[p].parent, t.nodes[p].side = parent, s
	*t.slot(p) = p
	tracer().Debugf("inserted %v as %s child", key, s)
	t.fixViolation(p)
	return p, true
}

// Min returns the position of the smallest key, or NoPos for an empty tree.
func (t *Tree[K]) Min() Pos {
	return t.minimum(t.root)
}

// Max returns the position of the largest key, or NoPos for an empty tree.
func (t *Tree[K]) Max() Pos {
	return t.maximum(t.root)
}

// Next returns the in-order successor of p, or NoPos if p holds the largest key.
// It walks the node links only and needs no auxiliary stack.
func (t *Tree[K]) Next(p Pos) Pos {
	n := t.mustExist(p)
	if n.right != NoPos {
		return t.minimum(n.right)
	}
	for t.nodes[p].side == isRightChild {
		p = t.nodes[p].parent
	}
	return t.nodes[p].parent // NoPos if we ascended from the root
}

// Prev returns the in-order predecessor of p, or NoPos if p holds the smallest key.
func (t *Tree[K]) Prev(p Pos) Pos {
	n := t.mustExist(p)
	if n.left != NoPos {
		return t.maximum(n.left)
	}
	for t.nodes[p].side == isLeftChild {
		p = t.nodes[p].parent
	}
	return t.nodes[p].parent
}

// Key returns the key stored at p. p must designate a node of t.
func (t *Tree[K]) Key(p Pos) K {
	return t.mustExist(p).key
}

// Color returns the color of the node at p. NoPos is black.
func (t *Tree[K]) Color(p Pos) Color {
	if p == NoPos {
		return Black
	}
	return t.mustExist(p).color
}

// Left returns the left child of p, or NoPos.
func (t *Tree[K]) Left(p Pos) Pos {
	return t.mustExist(p).left
}

// Right returns the right child of p, or NoPos.
func (t *Tree[K]) Right(p Pos) Pos {
	return t.mustExist(p).right
}

// Parent returns the parent of p, or NoPos for the root.
func (t *Tree[K]) Parent(p Pos) Pos {
	return t.mustExist(p).parent
}

// Height returns the number of nodes on the longest path from the root to
// a leaf.
func (t *Tree[K]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K]) height(p Pos) int {
	if p == NoPos {
		return 0
	}
	l, r := t.height(t.nodes[p].left), t.height(t.nodes[p].right)
	if l > r {
		return l + 1
	}
	return r + 1
}
