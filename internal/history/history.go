package history

import (
	"github.com/samber/mo"
	"github.com/spf13/afero"

	"github.com/LFroesch/rover/internal/errors"
)

// MaxEntries caps the undo stack; the oldest visits are dropped first.
const MaxEntries = 100

// History is an undo/redo stack of visited absolute directories.
type History struct {
	fs      afero.Fs
	undo    []string
	current string
	redo    []string
}

// New starts a history at start
func New(fs afero.Fs, start string) *History {
	return &History{fs: fs, current: start}
}

// Current is the working directory
func (h *History) Current() string {
	return h.current
}

func (h *History) UndoStack() []string {
	return append([]string(nil), h.undo...)
}

func (h *History) RedoStack() []string {
	return append([]string(nil), h.redo...)
}

// Push records a visit to path
func (h *History) Push(path string) {
	if path == h.current {
		return
	}
	h.redo = nil
	h.undo = append(h.undo, h.current)
	if len(h.undo) > MaxEntries {
		h.undo = h.undo[len(h.undo)-MaxEntries:]
	}
	h.current = path
}

// Leave moves current up to parent. When parent is the most recent undo
// entry the move is an undo; otherwise it is not recorded at all.
func (h *History) Leave(parent string) {
	if parent == h.current {
		return
	}
	if n := len(h.undo); n > 0 && h.undo[n-1] == parent {
		h.undo = h.undo[:n-1]
		h.redo = append(h.redo, h.current)
	}
	h.current = parent
}

// Undo returns to the previous directory. None means there is nothing to
// undo. If the target has vanished the whole history is discarded and a
// NotFound error is returned with current unchanged.
func (h *History) Undo() (mo.Option[string], error) {
	return h.step(&h.undo, &h.redo)
}

// Redo is the inverse of Undo
func (h *History) Redo() (mo.Option[string], error) {
	return h.step(&h.redo, &h.undo)
}

func (h *History) step(from, to *[]string) (mo.Option[string], error) {
	n := len(*from)
	if n == 0 {
		return mo.None[string](), nil
	}

	target := (*from)[n-1]
	if ok, err := afero.DirExists(h.fs, target); err != nil || !ok {
		h.undo = nil
		h.redo = nil
		return mo.None[string](), errors.NewNotFound(target)
	}

	*from = (*from)[:n-1]
	*to = append(*to, h.current)
	h.current = target
	return mo.Some(target), nil
}
