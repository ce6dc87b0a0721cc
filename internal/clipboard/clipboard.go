package clipboard

import (
	"path/filepath"

	"github.com/LFroesch/rover/internal/errors"
	"github.com/LFroesch/rover/internal/fileops"
	"github.com/LFroesch/rover/internal/listing"
)

// ErrEmpty is returned when pasting with nothing held.
var ErrEmpty = errors.New("clipboard empty")

// Mode decides what happens to the source after a paste.
type Mode int

const (
	// Replicate keeps the source and the clipboard content (repeatable paste)
	Replicate Mode = iota
	// Move removes the source after a successful paste and empties the clipboard
	Move
)

func (m Mode) String() string {
	if m == Move {
		return "cut"
	}
	return "copy"
}

// Clipboard holds at most one file, by absolute path.
type Clipboard struct {
	path string
	mode Mode
}

// Set replaces the content. Directories are refused and leave the
// clipboard untouched.
func (c *Clipboard) Set(path string, kind listing.Kind, mode Mode) error {
	if kind != listing.File {
		return errors.NewInvalidName(filepath.Base(path))
	}
	c.path = path
	c.mode = mode
	return nil
}

// Content returns the held path, if any
func (c *Clipboard) Content() (string, bool) {
	return c.path, c.path != ""
}

func (c *Clipboard) Mode() Mode {
	return c.mode
}

func (c *Clipboard) Empty() bool {
	return c.path == ""
}

func (c *Clipboard) Clear() {
	c.path = ""
	c.mode = Replicate
}

// Paste copies the held file into dir under its original base name. In
// Move mode the source is removed afterwards, and the clipboard is only
// cleared once that removal succeeds. Returns the pasted name.
func (c *Clipboard) Paste(ops *fileops.Ops, dir string) (string, error) {
	if c.Empty() {
		return "", ErrEmpty
	}

	name := filepath.Base(c.path)
	if err := ops.CopySafe(filepath.Join(dir, name), c.path); err != nil {
		return name, err
	}

	if c.mode == Move {
		src := listing.Entry{Name: name, Kind: listing.File}
		if err := ops.RemoveSafe(filepath.Dir(c.path), src); err != nil {
			return name, err
		}
		c.Clear()
	}
	return name, nil
}
