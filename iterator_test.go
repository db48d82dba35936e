package rbset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(2, 1, 3)
	end := S.End()
	require.True(t, end.IsEnd())
	require.False(t, end.Valid())
	last := end.Prev()
	require.True(t, last.Valid())
	require.Equal(t, 3, last.Key())
	require.Equal(t, end, last.Next())

	first := S.Begin()
	rend := first.Prev()
	require.True(t, rend.IsREnd())
	require.Equal(t, S.REnd().Base(), rend)
	require.Equal(t, first, rend.Next())
}

func TestSentinelsOfEmptySet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	require.True(t, S.End().Prev().IsREnd())
	require.True(t, S.REnd().Base().Next().IsEnd())
	require.Equal(t, S.End(), S.Begin())
}

func TestIteratorMisusePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(1, 2)
	require.Panics(t, func() { S.End().Next() })
	require.Panics(t, func() { S.End().Key() })
	require.Panics(t, func() { S.Begin().Prev().Prev() })
	require.Panics(t, func() { S.REnd().Key() })
	require.Panics(t, func() { S.REnd().Next() })
	require.Panics(t, func() { S.RBegin().Prev().Prev() })
	var zero Iterator[int]
	require.Panics(t, func() { zero.Next() })
	require.NotPanics(t, func() { S.REnd().Prev() })
}

func TestReverseIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(5, 3, 8)
	rit := S.RBegin()
	require.Equal(t, 8, rit.Key())
	rit = rit.Next()
	require.Equal(t, 5, rit.Key())
	require.Equal(t, 8, rit.Prev().Key())
	rit = rit.Next().Next()
	require.True(t, rit.IsREnd())
	require.True(t, rit.Equal(S.REnd()))
	require.Equal(t, 3, rit.Prev().Key())
	require.True(t, S.RBegin().Prev().Base().IsEnd())
}

func TestIteratorsSurviveInsertions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S := New[int]()
	S.InsertAll(10, 20, 30)
	it := S.Find(20)
	for k := 1; k <= 40; k += 2 { // odd keys, forcing many rotations
		S.Insert(k)
	}
	require.NoError(t, S.Check())
	require.Equal(t, 20, it.Key())
	require.Equal(t, 21, it.Next().Key())
	require.Equal(t, 19, it.Prev().Key())
	require.Equal(t, S.Find(20), it)
}

func TestIteratorsOfDifferentSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbset")
	defer teardown()
	//
	S1, S2 := New[int](), New[int]()
	require.False(t, S1.End().Equal(S2.End()))
	S1.Insert(1)
	S2.Insert(1)
	require.False(t, S1.Begin().Equal(S2.Begin()))
}
