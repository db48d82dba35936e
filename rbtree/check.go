package rbtree

import "fmt"

// Property identifies one of the structural properties of a red-black tree.
type Property int

// Properties checked by Check.
const (
	SearchOrder Property = iota // keys of left subtree < key < keys of right subtree
	NoRedRed                    // a red node never has a red parent
	BlackHeight                 // all paths to a leaf contain the same number of black nodes
	BlackRoot                   // the root is black
	Linkage                     // parent and side of every node match the parent's child field
	NodeCount                   // every node in the arena is reachable from the root
)

var propertyNames = [...]string{
	"search order", "no red-red", "black height", "black root", "linkage", "node count",
}

func (p Property) String() string {
	if p < 0 || int(p) >= len(propertyNames) {
		return fmt.Sprintf("Property(%d)", int(p))
	}
	return propertyNames[p]
}

// InvariantError is returned by Check if a tree violates a property.
type InvariantError struct {
	Property Property
	Key      string // key of the node where the violation has been detected
	Detail   string
}

func (e *InvariantError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("rbtree: %s violated: %s", e.Property, e.Detail)
	}
	return fmt.Sprintf("rbtree: %s violated at key %s: %s", e.Property, e.Key, e.Detail)
}

func (t *Tree[K]) violation(prop Property, p Pos, format string, args ...interface{}) error {
	err := &InvariantError{Property: prop, Detail: fmt.Sprintf(format, args...)}
	if p != NoPos {
		err.Key = fmt.Sprint(t.nodes[p].key)
	}
	tracer().Errorf("%v", err)
	return err
}

// Check verifies the red-black properties of t and the consistency of the
// node links. It returns nil for a well-formed tree, or an *InvariantError
// describing the first violation found.
func (t *Tree[K]) Check() error {
	if t.root == NoPos {
		if t.Len() != 0 {
			return t.violation(NodeCount, NoPos, "empty tree holds %d nodes", t.Len())
		}
		return nil
	}
	r := &t.nodes[t.root]
	if r.parent != NoPos || r.side != isRoot {
		return t.violation(Linkage, t.root, "root linked as %s child", r.side)
	}
	if r.color != Black {
		return t.violation(BlackRoot, t.root, "root is %s", r.color)
	}
	_, count, err := t.checkSubtree(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.Len() {
		return t.violation(NodeCount, NoPos, "%d of %d nodes reachable", count, t.Len())
	}
	return nil
}

// checkSubtree returns the black height and the node count of the subtree at p.
// lo and hi, if non-nil, are exclusive bounds for the keys in the subtree.
func (t *Tree[K]) checkSubtree(p Pos, lo, hi *K) (int, int, error) {
	if p == NoPos {
		return 0, 0, nil
	}
	n := &t.nodes[p]
	if lo != nil && !(*lo < n.key) {
		return 0, 0, t.violation(SearchOrder, p, "key not greater than %v", *lo)
	}
	if hi != nil && !(n.key < *hi) {
		return 0, 0, t.violation(SearchOrder, p, "key not less than %v", *hi)
	}
	for _, c := range [2]struct {
		pos Pos
		s   side
	}{{n.left, isLeftChild}, {n.right, isRightChild}} {
		if c.pos == NoPos {
			continue
		}
		child := &t.nodes[c.pos]
		if child.parent != p || child.side != c.s {
			return 0, 0, t.violation(Linkage, c.pos, "linked as %s child of another node", child.side)
		}
		if n.color == Red && child.color == Red {
			return 0, 0, t.violation(NoRedRed, c.pos, "red node has red parent")
		}
	}
	lh, lc, err := t.checkSubtree(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := t.checkSubtree(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, t.violation(BlackHeight, p, "left black height %d, right %d", lh, rh)
	}
	if n.color == Black {
		lh++
	}
	return lh, lc + rc + 1, nil
}

// BlackHeight returns the number of black nodes on any path from the root to
// an absent child. It is meaningful for well-formed trees only.
func (t *Tree[K]) BlackHeight() int {
	h := 0
	for p := t.root; p != NoPos; p = t.nodes[p].left {
		if t.nodes[p].color == Black {
			h++
		}
	}
	return h
}
