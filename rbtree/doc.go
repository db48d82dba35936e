/*
Package rbtree implements the storage and balancing engine of a red-black tree.

Nodes are kept in an arena (a slice) and addressed by position. Every node
records its parent's position and which of the parent's child fields
designates it (left, right, or the tree's root field). Rotations and the
post-insertion fix-up rely on this stored side instead of re-comparing keys,
so the relationship is always repaired right after a node is re-linked.

The tree supports unique-key insertion and lookup, but no removal of single
keys. Positions of nodes never change after they have been allocated: a node
keeps its key for its whole lifetime, rotations only change links and colors.
Clients may therefore hold a position across further insertions.

Keys must be totally ordered. Floating point NaN values violate this and
must not be inserted.

Package rbtree is the low-level engine for package rbset, which clients
will usually want to use instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rbset.tree'.
func tracer() tracing.Trace {
	return tracing.Select("rbset.tree")
}
