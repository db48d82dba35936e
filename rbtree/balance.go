package rbtree

// === Rotations =============================================================

// rotateLeft rotates the subtree at x to the left:
//
//        x                y
//       / \              / \
//      a   y     ⇒      x   c
//         / \          / \
//        b   c        a   b
//
// Colors are left untouched. x must have a right child.
func (t *Tree[K]) rotateLeft(x Pos) {
	y := t.nodes[x].right
	if y == NoPos {
		panic("rbtree: left rotation without right child")
	}
	*t.slot(x) = y // must be resolved before x is re-linked
	t.nodes[y].parent, t.nodes[y].side = t.nodes[x].parent, t.nodes[x].side
	t.link(x, t.nodes[y].left, isRightChild)
	t.link(y, x, isLeftChild)
}

// rotateRight is the mirror of rotateLeft. x must have a left child.
func (t *Tree[K]) rotateRight(x Pos) {
	y := t.nodes[x].left
	if y == NoPos {
		panic("rbtree: right rotation without left child")
	}
	*t.slot(x) = y
	t.nodes[y].parent, t.nodes[y].side = t.nodes[x].parent, t.nodes[x].side
	t.link(x, t.nodes[y].right, isLeftChild)
	t.link(y, x, isRightChild)
}

// === Fix-up after insertion ================================================

// fixViolation restores the red-black properties after the red node n has
// been linked into the tree. It ascends the tree until either the root has
// been reached or no red-red conflict is left.
//
// Absent uncles count as black.
func (t *Tree[K]) fixViolation(n Pos) {
	for {
		p := t.nodes[n].parent
		if p == NoPos {
			t.nodes[n].color = Black
			return
		}
		if t.nodes[n].color == Black || t.nodes[p].color == Black {
			return
		}
		g := t.nodes[p].parent
		if g == NoPos { // red root; cannot happen between public operations
			t.nodes[p].color = Black
			return
		}
		uncle := t.sibling(p)
		if t.color(uncle) == Red {
			tracer().Debugf("fix-up at %v: red uncle, recoloring", t.nodes[n].key)
			t.nodes[p].color = Black
			t.nodes[uncle].color = Black
			t.nodes[g].color = Red
			n = g
			continue
		}
		pside := t.nodes[p].side
		if t.nodes[n].side != pside { // LR or RL
			tracer().Debugf("fix-up at %v: inner child, rotating parent", t.nodes[n].key)
			if pside == isLeftChild {
				t.rotateLeft(p)
			} else {
				t.rotateRight(p)
			}
			n = p // the former parent is now an outer child of n
			continue
		}
		tracer().Debugf("fix-up at %v: outer child, rotating grandparent", t.nodes[n].key)
		if pside == isLeftChild { // LL
			t.rotateRight(g)
		} else { // RR
			t.rotateLeft(g)
		}
		t.nodes[p].color, t.nodes[g].color = t.nodes[g].color, t.nodes[p].color
		n = g
	}
}
