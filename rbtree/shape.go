package rbtree

import (
	"fmt"

	"github.com/cnf/structhash"
)

// ShapeNode describes a node of a tree for inspection and rendering.
// A tree's shape is the pre-order sequence of its nodes.
type ShapeNode struct {
	Key   string
	Color string
	Side  string
	Depth int
}

func (sn ShapeNode) String() string {
	return fmt.Sprintf("%s:%s", sn.Key, sn.Color)
}

// Shape lists the nodes of t in pre-order. Keys are formatted with fmt.Sprint.
func (t *Tree[K]) Shape() []ShapeNode {
	shape := make([]ShapeNode, 0, t.Len())
	t.Walk(func(p Pos, depth int) bool {
		n := &t.nodes[p]
		shape = append(shape, ShapeNode{
			Key:   fmt.Sprint(n.key),
			Color: n.color.String(),
			Side:  n.side.String(),
			Depth: depth,
		})
		return true
	})
	return shape
}

// Walk visits the nodes of t in pre-order, handing the position and depth
// of each node to visit. The root has depth 0. Walking stops as soon as
// visit returns false.
func (t *Tree[K]) Walk(visit func(p Pos, depth int) bool) {
	type frame struct {
		p     Pos
		depth int
	}
	if t.root == NoPos {
		return
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(f.p, f.depth) {
			return
		}
		n := &t.nodes[f.p]
		if n.right != NoPos {
			stack = append(stack, frame{n.right, f.depth + 1})
		}
		if n.left != NoPos {
			stack = append(stack, frame{n.left, f.depth + 1})
		}
	}
}

// Fingerprint hashes the shape of t, including node colors. Two trees have
// equal fingerprints iff their keys are arranged and colored identically.
func (t *Tree[K]) Fingerprint() (string, error) {
	shape := struct {
		Nodes []ShapeNode
	}{t.Shape()}
	return structhash.Hash(shape, 1)
}
