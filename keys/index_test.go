package keys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forestry/keys"
)

// sample is the four-record tree (1,0) (2,1) (3,1) (4,2) plus a duplicate of key 3.
var sample = []row{{1, 0}, {2, 1}, {3, 1}, {4, 2}, {3, 4}}

func TestNewIndex_InvalidArguments(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)

	_, err = keys.NewIndex[row, int](nil, p)
	assert.ErrorIs(t, err, keys.ErrInvalidArgument)

	_, err = keys.NewIndex[row, int](sample, nil)
	assert.ErrorIs(t, err, keys.ErrInvalidArgument)

	idx, err := keys.NewIndex[row, int]([]row{}, p)
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_HashedAndScannedAgree(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)

	hashed, err := keys.NewIndex[row, int](sample, p)
	require.NoError(t, err)
	scanned, err := keys.NewIndex[row, int](sample, p, keys.WithScan())
	require.NoError(t, err)

	assert.True(t, hashed.Hashed())
	assert.False(t, scanned.Hashed())

	for _, k := range []int{0, 1, 2, 3, 4, 99} {
		assert.Equal(t, scanned.ByKey(k), hashed.ByKey(k), "ByKey(%d)", k)
		assert.Equal(t, scanned.ByParent(k), hashed.ByParent(k), "ByParent(%d)", k)
	}

	assert.Equal(t, []int{2, 4}, hashed.ByKey(3))
	assert.Equal(t, []int{1, 2}, hashed.ByParent(1))
	assert.Empty(t, hashed.ByKey(99))
}

func TestIndex_First(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)
	idx, err := keys.NewIndex[row, int](sample, p)
	require.NoError(t, err)

	pos, ok := idx.First(3)
	assert.True(t, ok)
	assert.Equal(t, 2, pos)
	assert.Equal(t, row{3, 1}, idx.Record(pos))

	_, ok = idx.First(42)
	assert.False(t, ok)
}

func TestIndex_Duplicate(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)

	idx, err := keys.NewIndex[row, int](sample, p)
	require.NoError(t, err)
	k, dup := idx.Duplicate()
	assert.True(t, dup)
	assert.Equal(t, 3, k)

	idx, err = keys.NewIndex[row, int](sample[:4], p)
	require.NoError(t, err)
	_, dup = idx.Duplicate()
	assert.False(t, dup)
}

func TestIndex_FirstWins(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)

	for _, opts := range [][]keys.IndexOption{
		{keys.WithFirstWins()},
		{keys.WithFirstWins(), keys.WithScan()},
	} {
		idx, err := keys.NewIndex[row, int](sample, p, opts...)
		require.NoError(t, err)

		assert.Equal(t, []int{0, 1, 2, 3}, idx.Live())
		assert.Equal(t, []int{2}, idx.ByKey(3))
		assert.Empty(t, idx.ByParent(4), "shadowed record must not appear as a child")
		_, dup := idx.Duplicate()
		assert.False(t, dup)
	}
}

func TestIndex_CustomEqualityFallsBackToScan(t *testing.T) {
	records := []label{
		{Name: "Books", Parent: ""},
		{Name: "fiction", Parent: "BOOKS"},
		{Name: "Poetry", Parent: "books"},
	}
	p, err := keys.Custom(
		func(l label) string { return l.Name },
		func(l label) string { return l.Parent },
		strings.EqualFold,
	)
	require.NoError(t, err)

	idx, err := keys.NewIndex[label, string](records, p)
	require.NoError(t, err)
	assert.False(t, idx.Hashed())
	assert.Equal(t, []int{1, 2}, idx.ByParent("Books"))
	assert.Equal(t, []int{1}, idx.ByKey("FICTION"))

	p, err = keys.Custom(
		func(l label) string { return l.Name },
		func(l label) string { return l.Parent },
		strings.EqualFold,
		keys.WithCanonical(func(s string) any { return strings.ToLower(s) }),
	)
	require.NoError(t, err)
	idx, err = keys.NewIndex[label, string](records, p)
	require.NoError(t, err)
	assert.True(t, idx.Hashed())
	assert.Equal(t, []int{1, 2}, idx.ByParent("Books"))
	assert.Equal(t, []int{1}, idx.ByKey("FICTION"))
}
