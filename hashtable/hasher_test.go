package hashtable

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

type label string

func TestComparableHasher(t *testing.T) {
	type point struct{ x, y int }

	h := NewComparableHasher[point]()
	require.Equal(t, h.Hash(point{1, 2}), h.Hash(point{1, 2}))
	require.NotEqual(t, h.Hash(point{1, 2}), h.Hash(point{2, 1}))

	tbl, err := NewWithHasher[point, string](2, 0.5, h)
	require.NoError(t, err)

	tbl.Set(point{1, 2}, "a")
	tbl.Set(point{2, 1}, "b")
	require.Equal(t, "a", tbl.GetOr(point{1, 2}, ""))
	require.Equal(t, "b", tbl.GetOr(point{2, 1}, ""))
}

func TestStringHasher(t *testing.T) {
	var h StringHasher[label]
	require.Equal(t, xxhash.Sum64String("abc"), h.Hash("abc"))

	build := func() *Table[label, int] {
		tbl, err := NewWithHasher[label, int](4, 0.75, h)
		require.NoError(t, err)

		for i, key := range []label{"one", "two", "three", "four", "five", "six"} {
			tbl.Set(key, i)
		}

		return tbl
	}

	// Stable hashes give the same layout every time
	require.Equal(t, build().Keys(), build().Keys())
}

func TestIntegerHasher(t *testing.T) {
	require.Equal(t, uint64(7), IntegerHasher[uint8]{}.Hash(7))
	require.Equal(t, uint64(1<<40), IntegerHasher[int64]{}.Hash(1<<40))

	tbl, err := NewWithHasher[int, int](4, 1, IntegerHasher[int]{})
	require.NoError(t, err)

	tbl.Set(-1, 1)
	tbl.Set(-2, 2)
	require.Equal(t, 1, tbl.GetOr(-1, 0))
	require.Equal(t, 2, tbl.GetOr(-2, 0))
	require.Equal(t, []int{-2, -1}, tbl.Keys())
}
