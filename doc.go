/*
Package rbset implements an ordered set, backed by a red-black tree.

A Set holds unique keys of an ordered type and keeps them sorted. Keys are
inserted, looked up and iterated in ascending or descending order:

    S := rbset.New[int]()
    S.Insert(5)
    S.InsertAll(3, 8, 1)
    for it := S.Begin(); !it.Equal(S.End()); it = it.Next() {
        fmt.Println(it.Key())        // 1, 3, 5, 8
    }

Keys cannot be removed one by one; a set may only be cleared as a whole.

Iterators

Iterators are light-weight values, much like C++ STL iterators. Besides
positions at keys, an iterator may be in one of two sentinel states: End is
the position just behind the largest key, REnd the position just before
the smallest key. Advancing an iterator beyond a sentinel, or asking a
sentinel for its key, is a programming error and will panic.

Iterators remain valid across insertions: an iterator positioned at a key
stays at this key, and advancing it will respect keys inserted in the
meantime.

Concurrency

Sets are not safe for concurrent use. Clients have to serialize insertions
with respect to other insertions and to any iteration in progress.

Package structure is as follows:

■ rbset: the set and its iterators.

■ rbtree: Package rbtree implements node storage and the balancing engine.

■ cmd/rbrepl: an interactive shell to experiment with sets of integers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rbset'.
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}
