// Package cursor implements a focus-tracking view over one directory
// listing. A Cursor is never empty and is never mutated: every movement
// returns a new value.
package cursor

import (
	"errors"

	"github.com/samber/mo"

	"github.com/LFroesch/rover/internal/listing"
)

// ErrEmpty is returned when building a cursor over no entries.
var ErrEmpty = errors.New("cursor: empty listing")

// Cursor is a non-empty ordered sequence of entries with one in focus.
// entries is shared between cursors built from the same listing and must
// not be written to.
type Cursor struct {
	entries []listing.Entry
	index   int
}

// Predicate selects entries during a search.
type Predicate func(listing.Entry) bool

// New focuses the first entry.
func New(entries []listing.Entry) (Cursor, error) {
	if len(entries) == 0 {
		return Cursor{}, ErrEmpty
	}
	return Cursor{entries: entries}, nil
}

// FocusIndex focuses entries[i], clamping i to the listing bounds.
func FocusIndex(entries []listing.Entry, i int) (Cursor, error) {
	c, err := New(entries)
	if err != nil {
		return c, err
	}
	return c.at(i), nil
}

// FocusName focuses the entry called name, or returns None if absent.
func FocusName(entries []listing.Entry, name string) mo.Option[Cursor] {
	for i, e := range entries {
		if e.Name == name {
			return mo.Some(Cursor{entries: entries, index: i})
		}
	}
	return mo.None[Cursor]()
}

// Rebuild builds a cursor over a fresh listing. Focus lands on desiredName
// when it is still present; otherwise it keeps the previous offset from
// the top, clamped.
func Rebuild(entries []listing.Entry, desiredName string, previousIndex int) (Cursor, error) {
	if c, ok := FocusName(entries, desiredName).Get(); ok {
		return c, nil
	}
	return FocusIndex(entries, previousIndex)
}

func (c Cursor) at(i int) Cursor {
	if i < 0 {
		i = 0
	}
	if i >= len(c.entries) {
		i = len(c.entries) - 1
	}
	return Cursor{entries: c.entries, index: i}
}

// Focus returns the selected entry
func (c Cursor) Focus() listing.Entry {
	return c.entries[c.index]
}

// Index is the focus offset from the top
func (c Cursor) Index() int {
	return c.index
}

// Len is the total number of entries
func (c Cursor) Len() int {
	return len(c.entries)
}

// Before returns the entries above focus, closest last.
func (c Cursor) Before() []listing.Entry {
	return append([]listing.Entry(nil), c.entries[:c.index]...)
}

// After returns the entries below focus, closest first.
func (c Cursor) After() []listing.Entry {
	return append([]listing.Entry(nil), c.entries[c.index+1:]...)
}

// Entries returns before ++ [focus] ++ after.
func (c Cursor) Entries() []listing.Entry {
	return append([]listing.Entry(nil), c.entries...)
}

func (c Cursor) Next() mo.Option[Cursor] {
	if c.index >= len(c.entries)-1 {
		return mo.None[Cursor]()
	}
	return mo.Some(c.at(c.index + 1))
}

func (c Cursor) Prev() mo.Option[Cursor] {
	if c.index == 0 {
		return mo.None[Cursor]()
	}
	return mo.Some(c.at(c.index - 1))
}

func (c Cursor) First() Cursor {
	return c.at(0)
}

func (c Cursor) Last() Cursor {
	return c.at(len(c.entries) - 1)
}

// SearchForward scans from just after focus to the end without wrapping.
func (c Cursor) SearchForward(pred Predicate) mo.Option[Cursor] {
	for i := c.index + 1; i < len(c.entries); i++ {
		if pred(c.entries[i]) {
			return mo.Some(c.at(i))
		}
	}
	return mo.None[Cursor]()
}

// CircularSearch scans at most Len() entries starting one past focus and
// wrapping to the top, so the focused entry is checked last.
func (c Cursor) CircularSearch(pred Predicate) mo.Option[Cursor] {
	n := len(c.entries)
	for step := 1; step <= n; step++ {
		i := (c.index + step) % n
		if pred(c.entries[i]) {
			return mo.Some(c.at(i))
		}
	}
	return mo.None[Cursor]()
}
