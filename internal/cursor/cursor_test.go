package cursor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFroesch/rover/internal/listing"
)

func entries(names ...string) []listing.Entry {
	out := make([]listing.Entry, len(names))
	for i, n := range names {
		kind := listing.File
		if n == "." || n == ".." || strings.HasSuffix(n, "/") {
			kind = listing.Directory
			n = strings.TrimSuffix(n, "/")
		}
		out[i] = listing.Entry{Name: n, Kind: kind}
	}
	return out
}

func concat(c Cursor) []listing.Entry {
	out := c.Before()
	out = append(out, c.Focus())
	return append(out, c.After()...)
}

func nameIs(name string) Predicate {
	return func(e listing.Entry) bool { return e.Name == name }
}

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = FocusIndex(nil, 3)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Rebuild(nil, "x", 0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRebuildPreservesListing(t *testing.T) {
	listings := [][]listing.Entry{
		entries("."),
		entries(".", ".."),
		entries(".", "..", "a", "b", "c"),
		entries(".", "..", "dir/", "file.go", "zz"),
	}

	for _, l := range listings {
		for _, desired := range []string{".", "b", "missing"} {
			for _, prev := range []int{-4, 0, 1, 2, 10} {
				c, err := Rebuild(l, desired, prev)
				require.NoError(t, err)
				assert.Equal(t, l, concat(c), "desired=%s prev=%d", desired, prev)
				assert.Equal(t, l, c.Entries())
				assert.Equal(t, len(l), c.Len())
			}
		}
	}
}

func TestRebuildPrefersName(t *testing.T) {
	c, err := Rebuild(entries(".", "..", "a", "b", "c"), "c", 1)
	require.NoError(t, err)
	assert.Equal(t, "c", c.Focus().Name)
	assert.Equal(t, 4, c.Index())
}

func TestRebuildFallsBackToOffset(t *testing.T) {
	// "b" was removed; focus stays third from the top
	c, err := Rebuild(entries(".", "..", "a", "c"), "b", 3)
	require.NoError(t, err)
	assert.Equal(t, "c", c.Focus().Name)

	// offset past the end clamps to the last entry
	c, err = Rebuild(entries(".", ".."), "gone", 7)
	require.NoError(t, err)
	assert.Equal(t, "..", c.Focus().Name)
}

func TestFocusName(t *testing.T) {
	l := entries(".", "..", "a", "b")
	assert.True(t, FocusName(l, "b").IsPresent())
	assert.True(t, FocusName(l, "nope").IsAbsent())
}

func TestBeforeAfterOrdering(t *testing.T) {
	c, err := FocusIndex(entries(".", "..", "a", "b", "c"), 2)
	require.NoError(t, err)

	before := c.Before()
	after := c.After()
	assert.Equal(t, "..", before[len(before)-1].Name, "closest-to-focus last")
	assert.Equal(t, "b", after[0].Name, "closest-to-focus first")
}

func TestNextPrevBounds(t *testing.T) {
	c, err := New(entries(".", "..", "a"))
	require.NoError(t, err)

	assert.True(t, c.Prev().IsAbsent())
	last := c.Last()
	assert.True(t, last.Next().IsAbsent())
	assert.Equal(t, "a", last.Focus().Name)
	assert.Equal(t, ".", last.First().Focus().Name)
}

func TestNextThenPrevRestoresFocus(t *testing.T) {
	l := entries(".", "..", "a", "b", "c")
	for i := 1; i < len(l)-1; i++ {
		c, err := FocusIndex(l, i)
		require.NoError(t, err)

		next, ok := c.Next().Get()
		require.True(t, ok)
		back, ok := next.Prev().Get()
		require.True(t, ok)
		assert.Equal(t, c.Focus(), back.Focus())
		assert.Equal(t, l, concat(back))
	}
}

func TestSearchForwardDoesNotWrap(t *testing.T) {
	c, err := FocusIndex(entries(".", "..", "alpha", "beta", "gamma"), 3)
	require.NoError(t, err)

	assert.True(t, c.SearchForward(nameIs("alpha")).IsAbsent())
	found, ok := c.SearchForward(nameIs("gamma")).Get()
	require.True(t, ok)
	assert.Equal(t, 4, found.Index())
	assert.True(t, c.SearchForward(nameIs("beta")).IsAbsent(), "focus itself is skipped")
}

func TestCircularSearchWraps(t *testing.T) {
	c, err := FocusIndex(entries(".", "..", "alpha", "beta", "gamma"), 3)
	require.NoError(t, err)

	found, ok := c.CircularSearch(nameIs("alpha")).Get()
	require.True(t, ok)
	assert.Equal(t, "alpha", found.Focus().Name)

	self, ok := c.CircularSearch(nameIs("beta")).Get()
	require.True(t, ok, "focused entry is checked after the wrap")
	assert.Equal(t, 3, self.Index())
}

func TestCircularSearchIsBounded(t *testing.T) {
	c, err := New(entries(".", "..", "a", "b"))
	require.NoError(t, err)

	calls := 0
	res := c.CircularSearch(func(listing.Entry) bool {
		calls++
		return false
	})
	assert.True(t, res.IsAbsent())
	assert.Equal(t, c.Len(), calls)
}

func TestCircularSearchReturnsFirstInCyclicOrder(t *testing.T) {
	c, err := FocusIndex(entries(".", "..", "ab", "b", "ac"), 2)
	require.NoError(t, err)

	found, ok := c.CircularSearch(func(e listing.Entry) bool {
		return strings.HasPrefix(e.Name, "a")
	}).Get()
	require.True(t, ok)
	assert.Equal(t, "ac", found.Focus().Name)
}
