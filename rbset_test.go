package rbset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	if !S.Empty() || S.Len() != 0 {
		t.Errorf("Expected new set to be empty")
	}
	if it := S.Find(3); !it.Equal(S.End()) {
		t.Errorf("Expected Find on empty set to return End()")
	}
	if !S.Begin().Equal(S.End()) {
		t.Errorf("Expected Begin() == End() for empty set")
	}
	if !S.RBegin().Equal(S.REnd()) {
		t.Errorf("Expected RBegin() == REnd() for empty set")
	}
	if _, ok := S.Min(); ok {
		t.Errorf("Expected no minimum for empty set")
	}
	if _, ok := S.Max(); ok {
		t.Errorf("Expected no maximum for empty set")
	}
	if S.String() != "{ }" {
		t.Errorf("Expected empty set to print as { }, is %s", S.String())
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	if n := S.InsertAll(5, 3, 8, 1, 4, 7, 9); n != 7 {
		t.Fatalf("Expected 7 insertions, have %d", n)
	}
	var fwd []int
	for it := S.Begin(); !it.Equal(S.End()); it = it.Next() {
		fwd = append(fwd, it.Key())
	}
	if !equal(fwd, []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("Expected [1 3 4 5 7 8 9], is %v", fwd)
	}
	var bwd []int
	for it := S.RBegin(); !it.Equal(S.REnd()); it = it.Next() {
		bwd = append(bwd, it.Key())
	}
	if !equal(bwd, []int{9, 8, 7, 5, 4, 3, 1}) {
		t.Errorf("Expected [9 8 7 5 4 3 1], is %v", bwd)
	}
	if S.String() != "{ 1, 3, 4, 5, 7, 8, 9 }" {
		t.Errorf("Unexpected string representation %s", S.String())
	}
	S.Dump()
}

func TestInsertFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[string]()
	for _, k := range []string{"m", "c", "x", "a", "e"} {
		it, inserted := S.Insert(k)
		if !inserted {
			t.Errorf("Expected %q to be inserted", k)
		}
		if f := S.Find(k); f != it {
			t.Errorf("Expected Find(%q) to equal the iterator returned by Insert", k)
		}
		if it.Key() != k {
			t.Errorf("Expected iterator at %q, is at %q", k, it.Key())
		}
	}
	if S.Count("e") != 1 || S.Count("f") != 0 {
		t.Errorf("Expected Count to be 1 for present and 0 for absent keys")
	}
	if !S.Contains("x") || S.Contains("y") {
		t.Errorf("Contains reports wrong membership")
	}
	if _, found := S.Lookup("b"); found {
		t.Errorf("Expected Lookup of absent key to fail")
	}
	if min, _ := S.Min(); min != "a" {
		t.Errorf("Expected min = a, is %q", min)
	}
	if max, _ := S.Max(); max != "x" {
		t.Errorf("Expected max = x, is %q", max)
	}
}

func TestDuplicateInsertion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(10, 20, 30, 40, 50)
	before, _ := S.Fingerprint()
	first := S.Find(30)
	it, inserted := S.Insert(30)
	if inserted {
		t.Errorf("Expected second insertion of 30 to report false")
	}
	if it != first {
		t.Errorf("Expected second insertion to return the original position")
	}
	after, _ := S.Fingerprint()
	if before != after {
		t.Errorf("Expected duplicate insertion to leave the tree shape unchanged")
	}
	if S.Len() != 5 || !equal(S.Values(), []int{10, 20, 30, 40, 50}) {
		t.Errorf("Expected contents to be unchanged, are %v", S.Values())
	}
	if n := S.InsertAll(10, 20, 60); n != 1 {
		t.Errorf("Expected 1 new key, have %d", n)
	}
}

func TestCanonicalRotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	for _, keys := range [][]int{{10, 20, 30}, {30, 20, 10}} {
		S := New[int](CheckInvariants(true))
		S.InsertAll(keys...)
		tree := S.Tree()
		root := tree.Root()
		if tree.Key(root) != 20 {
			t.Errorf("Expected 20 to be root after inserting %v, is %d", keys, tree.Key(root))
		}
		if tree.Key(tree.Left(root)) != 10 || tree.Key(tree.Right(root)) != 30 {
			t.Errorf("Expected 10 and 30 as children of root")
		}
	}
}

func TestEachStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int](Capacity(16))
	S.InsertAll(4, 2, 6, 1, 3, 5, 7)
	var got []int
	S.Each(func(k int) bool {
		got = append(got, k)
		return k < 3
	})
	if !equal(got, []int{1, 2, 3}) {
		t.Errorf("Expected [1 2 3], is %v", got)
	}
	got = got[:0]
	S.EachReverse(func(k int) bool {
		got = append(got, k)
		return k > 5
	})
	if !equal(got, []int{7, 6, 5}) {
		t.Errorf("Expected [7 6 5], is %v", got)
	}
}

func TestClearSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(1, 2, 3)
	S.Clear()
	if !S.Empty() || !S.Begin().Equal(S.End()) {
		t.Errorf("Expected cleared set to be empty")
	}
	S.Insert(2)
	if S.Len() != 1 || !S.Contains(2) {
		t.Errorf("Expected cleared set to be re-usable")
	}
}

func equal[K comparable](a, b []K) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
