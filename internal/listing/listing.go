package listing

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Kind is the type of a directory entry
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

const (
	Self   = "."
	Parent = ".."
)

// Entry is one row of a directory listing.
type Entry struct {
	Name string
	Kind Kind
}

func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// IsAnchor reports whether e is "." or "..", which are never mutated.
func (e Entry) IsAnchor() bool {
	return IsAnchorName(e.Name)
}

func IsAnchorName(name string) bool {
	return name == Self || name == Parent
}

// Read lists dir on fs. The result always starts with "." and "..",
// followed by the directory's entries sorted by name.
func Read(fs afero.Fs, dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(infos)+2)
	entries = append(entries,
		Entry{Name: Self, Kind: Directory},
		Entry{Name: Parent, Kind: Directory},
	)

	// afero.ReadDir sorts by name
	for _, info := range infos {
		kind := File
		if info.IsDir() {
			kind = Directory
		} else if info.Mode()&os.ModeSymlink != 0 {
			// Follow the link; broken links stay files
			if target, err := fs.Stat(filepath.Join(dir, info.Name())); err == nil && target.IsDir() {
				kind = Directory
			}
		}
		entries = append(entries, Entry{Name: info.Name(), Kind: kind})
	}

	return entries, nil
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Contains reports whether an entry called name is present.
func Contains(entries []Entry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
