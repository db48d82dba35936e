package rbtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/exp/constraints"
)

//go:generate stringer -type=Color

// Color is the color tag of a tree node.
type Color uint8

// Nodes are either black or red. Absent children count as black.
const (
	Black Color = iota
	Red
)

// Pos is the position of a node within a tree's node arena.
// Positions are stable for the lifetime of a tree (or until Clear is called).
type Pos int32

// NoPos denotes an absent node. Arena slot 0 is reserved, thus the zero value
// of a Pos never designates a node.
const NoPos Pos = 0

// side tells which field of a node's parent designates the node.
type side uint8

const (
	isRoot side = iota // designated by the tree's root field
	isLeftChild
	isRightChild
)

func (s side) String() string {
	switch s {
	case isLeftChild:
		return "left"
	case isRightChild:
		return "right"
	}
	return "root"
}

type node[K constraints.Ordered] struct {
	key    K
	color  Color
	side   side
	parent Pos
	left   Pos
	right  Pos
}

// alloc appends a new red node, not yet linked into the tree.
// Callers must not hold pointers into the arena across a call to alloc.
func (t *Tree[K]) alloc(key K) Pos {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[K]{}) // reserve slot for NoPos
	}
	t.nodes = append(t.nodes, node[K]{key: key, color: Red})
	return Pos(len(t.nodes) - 1)
}

// slot returns the field which designates the node at p: either a child
// field of p's parent or the tree's root field.
func (t *Tree[K]) slot(p Pos) *Pos {
	n := &t.nodes[p]
	switch n.side {
	case isLeftChild:
		return &t.nodes[n.parent].left
	case isRightChild:
		return &t.nodes[n.parent].right
	}
	return &t.root
}

// link makes child the left or right child of parent. child may be NoPos.
func (t *Tree[K]) link(parent Pos, child Pos, s side) {
	if s == isLeftChild {
		t.nodes[parent].left = child
	} else {
		t.nodes[parent].right = child
	}
	if child != NoPos {
		t.nodes[child].parent = parent
		t.nodes[child].side = s
	}
}

func (t *Tree[K]) color(p Pos) Color {
	if p == NoPos {
		return Black
	}
	return t.nodes[p].color
}

// sibling returns the other child of p's parent, or NoPos.
func (t *Tree[K]) sibling(p Pos) Pos {
	n := &t.nodes[p]
	switch n.side {
	case isLeftChild:
		return t.nodes[n.parent].right
	case isRightChild:
		return t.nodes[n.parent].left
	}
	return NoPos
}

func (t *Tree[K]) minimum(p Pos) Pos {
	for p != NoPos && t.nodes[p].left != NoPos {
		p = t.nodes[p].left
	}
	return p
}

func (t *Tree[K]) maximum(p Pos) Pos {
	for p != NoPos && t.nodes[p].right != NoPos {
		p = t.nodes[p].right
	}
	return p
}

func (t *Tree[K]) mustExist(p Pos) *node[K] {
	if p <= NoPos || int(p) >= len(t.nodes) {
		panic("rbtree: access to non-existent node")
	}
	return &t.nodes[p]
}
