package rbset

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/rbset/rbtree"
	"golang.org/x/exp/constraints"
)

// Set is an ordered set of unique keys. Create sets with New.
type Set[K constraints.Ordered] struct {
	tree  *rbtree.Tree[K]
	check bool
}

// New creates an empty set.
//
//     S := rbset.New[string](rbset.Capacity(100))
//
func New[K constraints.Ordered](opts ...Option) *Set[K] {
	o := makeOptions(opts)
	s := &Set[K]{
		tree:  rbtree.New[K](),
		check: o.check,
	}
	s.tree.Grow(o.capacity)
	return s
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// Empty is true for a set without keys.
func (s *Set[K]) Empty() bool {
	return s.tree.Len() == 0
}

// Insert adds key to the set. It returns an iterator positioned at key and
// true if key has been added, or an iterator at the already present key and
// false. Inserting a present key does not change the set.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	p, inserted := s.tree.Insert(key)
	if inserted && s.check {
		if err := s.tree.Check(); err != nil {
			panic(fmt.Errorf("rbset: corrupt tree after inserting %v: %w", key, err))
		}
	}
	return s.at(p), inserted
}

// InsertAll adds keys to the set and returns the number of keys which have
// not been present before.
func (s *Set[K]) InsertAll(keys ...K) int {
	cnt := 0
	for _, k := range keys {
		if _, inserted := s.Insert(k); inserted {
			cnt++
		}
	}
	return cnt
}

// Find returns an iterator positioned at key, or End() if key is not
// contained in the set.
func (s *Set[K]) Find(key K) Iterator[K] {
	it, _ := s.Lookup(key)
	return it
}

// Lookup is like Find, but additionally reports if key has been found.
func (s *Set[K]) Lookup(key K) (Iterator[K], bool) {
	if p, found := s.tree.Find(key); found {
		return s.at(p), true
	}
	return s.End(), false
}

// Count returns 1 if key is contained in the set, 0 otherwise.
func (s *Set[K]) Count(key K) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// Contains is true if key is contained in the set.
func (s *Set[K]) Contains(key K) bool {
	_, found := s.tree.Find(key)
	return found
}

// Min returns the smallest key. The flag is false for an empty set.
func (s *Set[K]) Min() (K, bool) {
	return s.keyAt(s.tree.Min())
}

// Max returns the largest key. The flag is false for an empty set.
func (s *Set[K]) Max() (K, bool) {
	return s.keyAt(s.tree.Max())
}

func (s *Set[K]) keyAt(p rbtree.Pos) (K, bool) {
	if p == rbtree.NoPos {
		var zero K
		return zero, false
	}
	return s.tree.Key(p), true
}

// Clear removes all keys. Iterators obtained before are invalid afterwards.
func (s *Set[K]) Clear() {
	s.tree.Clear()
}

// Each calls f for every key in ascending order, until f returns false.
func (s *Set[K]) Each(f func(K) bool) {
	for p := s.tree.Min(); p != rbtree.NoPos; p = s.tree.Next(p) {
		if !f(s.tree.Key(p)) {
			return
		}
	}
}

// EachReverse calls f for every key in descending order, until f returns false.
func (s *Set[K]) EachReverse(f func(K) bool) {
	for p := s.tree.Max(); p != rbtree.NoPos; p = s.tree.Prev(p) {
		if !f(s.tree.Key(p)) {
			return
		}
	}
}

// Values returns the keys of the set in ascending order.
func (s *Set[K]) Values() []K {
	values := make([]K, 0, s.Len())
	s.Each(func(k K) bool {
		values = append(values, k)
		return true
	})
	return values
}

// Check verifies the internal consistency of the set's tree.
// It returns nil for a healthy set.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}

// Fingerprint returns a hash of the tree's shape and coloring.
// It is mainly useful for tests and debugging.
func (s *Set[K]) Fingerprint() (string, error) {
	return s.tree.Fingerprint()
}

// Tree gives access to the underlying red-black tree, for inspection.
func (s *Set[K]) Tree() *rbtree.Tree[K] {
	return s.tree
}

// String returns a string of the form "{ 1, 2, 3 }".
func (s *Set[K]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	s.Each(func(k K) bool {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, k)
		return true
	})
	b.WriteString(" }")
	return b.String()
}

// Dump is a debugging helper. It traces the tree's nodes in pre-order,
// indented by depth.
func (s *Set[K]) Dump() {
	tracer().Debugf("--- set of %d keys, black height %d ---", s.Len(), s.tree.BlackHeight())
	for _, n := range s.tree.Shape() {
		tracer().Debugf("%*s%s", 2*n.Depth, "", n)
	}
	tracer().Debugf("----------------------------------------")
}
