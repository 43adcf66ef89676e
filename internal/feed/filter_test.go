package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/robertwachen/fritterfrontend/pkg/errors"
)

func TestFilterSet_Set(t *testing.T) {
	t.Run("overwrites and trims", func(t *testing.T) {
		fs := NewFilterSet()
		require.NoError(t, fs.Set(FilterAuthor, "alice"))
		require.NoError(t, fs.Set(FilterAuthor, "  bob "))

		v, ok := fs.Get(FilterAuthor)
		assert.True(t, ok)
		assert.Equal(t, "bob", v)
		assert.Equal(t, 1, fs.Len())
	})

	t.Run("empty value removes", func(t *testing.T) {
		fs := NewFilterSet()
		require.NoError(t, fs.Set(FilterAuthor, "alice"))
		require.NoError(t, fs.Set(FilterAuthor, "   "))

		_, ok := fs.Get(FilterAuthor)
		assert.False(t, ok)
		assert.True(t, fs.IsEmpty())
	})

	t.Run("home club removes club criterion", func(t *testing.T) {
		fs := NewFilterSet()
		require.NoError(t, fs.Set(FilterClubName, "Chess"))
		require.NoError(t, fs.Set(FilterClubName, "main"))

		assert.Equal(t, "", fs.ClubName())
		assert.True(t, fs.IsEmpty())
	})

	t.Run("Main is an ordinary author name", func(t *testing.T) {
		fs := NewFilterSet()
		require.NoError(t, fs.Set(FilterAuthor, "Main"))
		assert.Equal(t, "Main", fs.Author())
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		fs := NewFilterSet()
		err := fs.Set("tag", "go")
		assert.ErrorIs(t, err, appErrors.ErrInvalidFilterName)
		assert.True(t, fs.IsEmpty())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var fs FilterSet
		assert.True(t, fs.IsEmpty())
		require.NoError(t, fs.Set(FilterClubName, "Chess"))
		assert.Equal(t, "Chess", fs.ClubName())
	})
}

func TestFilterSet_Clear(t *testing.T) {
	fs := NewFilterSet()
	require.NoError(t, fs.Set(FilterAuthor, "alice"))
	require.NoError(t, fs.Set(FilterClubName, "Chess"))

	fs.Clear()
	assert.True(t, fs.IsEmpty())
	assert.Equal(t, "", fs.Encode())

	var zero FilterSet
	zero.Clear()
	assert.True(t, zero.IsEmpty())
}

func TestFilterSet_Encode(t *testing.T) {
	a := NewFilterSet()
	require.NoError(t, a.Set(FilterClubName, "Chess Club"))
	require.NoError(t, a.Set(FilterAuthor, "alice"))

	b := NewFilterSet()
	require.NoError(t, b.Set(FilterAuthor, "alice"))
	require.NoError(t, b.Set(FilterClubName, "Chess Club"))

	assert.Equal(t, "author=alice&clubName=Chess+Club", a.Encode())
	assert.Equal(t, a.Encode(), b.Encode())
	assert.True(t, a.Equal(b))
	assert.Equal(t, "<home>", NewFilterSet().String())
}

func TestFilterSet_CloneIsIndependent(t *testing.T) {
	a := NewFilterSet()
	require.NoError(t, a.Set(FilterAuthor, "alice"))

	b := a.Clone()
	require.NoError(t, b.Set(FilterAuthor, "bob"))

	assert.Equal(t, "alice", a.Author())
	assert.False(t, a.Equal(b))
}

func TestParseFilterSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		fs := NewFilterSet()
		require.NoError(t, fs.Set(FilterAuthor, "alice"))
		require.NoError(t, fs.Set(FilterClubName, "Chess"))

		parsed, err := ParseFilterSet(fs.Encode())
		require.NoError(t, err)
		assert.True(t, fs.Equal(parsed))
	})

	t.Run("normalizes like Set", func(t *testing.T) {
		parsed, err := ParseFilterSet("clubName=Main&author=")
		require.NoError(t, err)
		assert.True(t, parsed.IsEmpty())
	})

	t.Run("last value wins", func(t *testing.T) {
		parsed, err := ParseFilterSet("author=alice&author=bob")
		require.NoError(t, err)
		assert.Equal(t, "bob", parsed.Author())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseFilterSet("author=alice&sort=new")
		assert.ErrorIs(t, err, appErrors.ErrInvalidFilterName)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseFilterSet("author=%zz")
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}
