package keys_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forestry/keys"
)

func TestSet_Hashed(t *testing.T) {
	p, err := keys.Comparable(rowID, rowParent)
	require.NoError(t, err)

	s := keys.NewSet[int](p)
	assert.True(t, s.Add(1))
	assert.True(t, s.Add(2))
	assert.False(t, s.Add(1), "second insert of the same key")
	assert.Equal(t, 2, s.Len())

	s.Remove(1)
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.Equal(t, 1, s.Len())
}

func TestSet_ScannedUsesEquality(t *testing.T) {
	p, err := keys.Custom(
		func(l label) string { return l.Name },
		func(l label) string { return l.Parent },
		strings.EqualFold,
	)
	require.NoError(t, err)

	s := keys.NewSet[string](p)
	assert.True(t, s.Add("Books"))
	assert.False(t, s.Add("BOOKS"))
	assert.True(t, s.Has("books"))
	assert.True(t, s.Add("Music"))

	s.Remove("bOoKs")
	assert.False(t, s.Has("Books"))
	assert.True(t, s.Has("music"))
	assert.Equal(t, 1, s.Len())

	s.Remove("absent")
	assert.Equal(t, 1, s.Len())
}
