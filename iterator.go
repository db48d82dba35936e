package rbset

import (
	"github.com/npillmayer/rbset/rbtree"
	"golang.org/x/exp/constraints"
)

type cursor uint8

const (
	atKey  cursor = iota // positioned at a node
	atEnd                // one past the largest key
	atREnd               // one before the smallest key
)

// Iterator is a position within a set, traversing keys in ascending order.
// Iterators are values: Next and Prev return new iterators and leave the
// receiver untouched.
//
// Iterators of the same set may be compared with == or Equal.
type Iterator[K constraints.Ordered] struct {
	set *Set[K]
	cur cursor
	pos rbtree.Pos // NoPos for sentinels
}

// Begin returns an iterator at the smallest key, or End() for an empty set.
func (s *Set[K]) Begin() Iterator[K] {
	return s.at(s.tree.Min())
}

// End returns the sentinel iterator positioned behind the largest key.
func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{set: s, cur: atEnd}
}

// at returns an iterator at p; NoPos results in End().
func (s *Set[K]) at(p rbtree.Pos) Iterator[K] {
	if p == rbtree.NoPos {
		return s.End()
	}
	return Iterator[K]{set: s, cur: atKey, pos: p}
}

func (s *Set[K]) rend() Iterator[K] {
	return Iterator[K]{set: s, cur: atREnd}
}

// Valid is true if the iterator is positioned at a key.
func (it Iterator[K]) Valid() bool {
	return it.set != nil && it.cur == atKey
}

// IsEnd is true for the sentinel behind the largest key.
func (it Iterator[K]) IsEnd() bool {
	return it.cur == atEnd
}

// IsREnd is true for the sentinel before the smallest key.
func (it Iterator[K]) IsREnd() bool {
	return it.cur == atREnd
}

// Equal is true if both iterators belong to the same set and are at the
// same position.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	return it == other
}

// Key returns the key at the iterator's position.
// Calling Key on a sentinel iterator panics.
func (it Iterator[K]) Key() K {
	it.mustBeSet()
	if it.cur != atKey {
		panic("rbset: attempt to dereference a sentinel iterator")
	}
	return it.set.tree.Key(it.pos)
}

// Next returns an iterator at the successor key. Advancing the last key
// results in End(), advancing REnd results in the first key.
// Calling Next on End panics.
func (it Iterator[K]) Next() Iterator[K] {
	it.mustBeSet()
	switch it.cur {
	case atEnd:
		panic("rbset: attempt to advance an iterator past End")
	case atREnd:
		return it.set.Begin()
	}
	return it.set.at(it.set.tree.Next(it.pos))
}

// Prev returns an iterator at the predecessor key. Stepping back from the
// first key results in REnd, stepping back from End results in the last key.
// Calling Prev on REnd panics.
func (it Iterator[K]) Prev() Iterator[K] {
	it.mustBeSet()
	switch it.cur {
	case atREnd:
		panic("rbset: attempt to move an iterator before REnd")
	case atEnd:
		if p := it.set.tree.Max(); p != rbtree.NoPos {
			return it.set.at(p)
		}
		return it.set.rend()
	}
	if p := it.set.tree.Prev(it.pos); p != rbtree.NoPos {
		return it.set.at(p)
	}
	return it.set.rend()
}

func (it Iterator[K]) mustBeSet() {
	if it.set == nil {
		panic("rbset: use of uninitialized iterator")
	}
}

// --- Reverse iteration -----------------------------------------------------

// ReverseIterator traverses a set in descending order. It is the mirror
// image of an Iterator: Next moves towards smaller keys, and the sentinel
// reached by advancing beyond the smallest key is REnd.
type ReverseIterator[K constraints.Ordered] struct {
	base Iterator[K]
}

// RBegin returns a reverse iterator at the largest key, or REnd() for an
// empty set.
func (s *Set[K]) RBegin() ReverseIterator[K] {
	if p := s.tree.Max(); p != rbtree.NoPos {
		return ReverseIterator[K]{base: s.at(p)}
	}
	return s.REnd()
}

// REnd returns the sentinel reverse iterator positioned before the smallest key.
func (s *Set[K]) REnd() ReverseIterator[K] {
	return ReverseIterator[K]{base: s.rend()}
}

// Base returns the forward iterator at the same position.
func (rit ReverseIterator[K]) Base() Iterator[K] {
	return rit.base
}

// Valid is true if the iterator is positioned at a key.
func (rit ReverseIterator[K]) Valid() bool {
	return rit.base.Valid()
}

// IsREnd is true for the sentinel before the smallest key.
func (rit ReverseIterator[K]) IsREnd() bool {
	return rit.base.IsREnd()
}

// Equal is true if both iterators belong to the same set and are at the
// same position.
func (rit ReverseIterator[K]) Equal(other ReverseIterator[K]) bool {
	return rit.base == other.base
}

// Key returns the key at the iterator's position. Calling Key on a sentinel
// iterator panics.
func (rit ReverseIterator[K]) Key() K {
	return rit.base.Key()
}

// Next returns an iterator at the next smaller key, or REnd.
// Calling Next on REnd panics.
func (rit ReverseIterator[K]) Next() ReverseIterator[K] {
	return ReverseIterator[K]{base: rit.base.Prev()}
}

// Prev returns an iterator at the next larger key. Calling Prev on REnd
// results in the smallest key. Calling Prev at the largest key results in
// a position equal to the forward End(); moving further panics.
func (rit ReverseIterator[K]) Prev() ReverseIterator[K] {
	return ReverseIterator[K]{base: rit.base.Next()}
}
