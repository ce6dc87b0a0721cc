package fileops

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/LFroesch/rover/internal/errors"
	"github.com/LFroesch/rover/internal/listing"
)

const dirPerm = 0755

// Ops performs collision-checked mutations. Every operation re-lists the
// target directory before touching it so the reason reported to the user
// doesn't depend on filesystem error codes.
type Ops struct {
	fs afero.Fs
}

// New wraps fs
func New(fs afero.Fs) *Ops {
	return &Ops{fs: fs}
}

// Fs returns the underlying filesystem
func (o *Ops) Fs() afero.Fs {
	return o.fs
}

// CreateSafe creates an empty file or directory named entry.Name in dir
func (o *Ops) CreateSafe(dir string, entry listing.Entry) error {
	if err := ValidateName(entry.Name); err != nil {
		return err
	}
	if err := o.checkFree(dir, entry.Name); err != nil {
		return err
	}

	path := filepath.Join(dir, entry.Name)
	if entry.IsDir() {
		return errors.Wrap(o.fs.Mkdir(path, dirPerm), path)
	}

	file, err := o.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrap(err, path)
	}
	return errors.Wrap(file.Close(), path)
}

// RemoveSafe removes a file, or a directory and everything below it
func (o *Ops) RemoveSafe(dir string, entry listing.Entry) error {
	if entry.IsAnchor() {
		return errors.NewInvalidName(entry.Name)
	}

	path := filepath.Join(dir, entry.Name)
	if entry.IsDir() {
		return errors.Wrap(o.fs.RemoveAll(path), path)
	}
	return errors.Wrap(o.fs.Remove(path), path)
}

// RenameSafe renames entry within dir
func (o *Ops) RenameSafe(dir string, entry listing.Entry, newName string) error {
	if entry.IsAnchor() {
		return errors.NewInvalidName(entry.Name)
	}
	if err := ValidateName(newName); err != nil {
		return err
	}
	if newName == entry.Name {
		return nil
	}
	if err := o.checkFree(dir, newName); err != nil {
		return err
	}

	oldPath := filepath.Join(dir, entry.Name)
	return errors.Wrap(o.fs.Rename(oldPath, filepath.Join(dir, newName)), oldPath)
}

// CopySafe copies the file at src to dst. Directories are refused.
func (o *Ops) CopySafe(dst, src string) error {
	srcInfo, err := o.fs.Stat(src)
	if err != nil {
		return errors.Wrap(err, src)
	}
	if srcInfo.IsDir() {
		return errors.NewInvalidName(filepath.Base(src))
	}
	if err := o.checkFree(filepath.Dir(dst), filepath.Base(dst)); err != nil {
		return err
	}
	return o.copyFile(src, dst, srcInfo.Mode().Perm())
}

func (o *Ops) copyFile(src, dst string, perm os.FileMode) error {
	in, err := o.fs.Open(src)
	if err != nil {
		return errors.Wrap(err, src)
	}
	defer in.Close()

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return errors.Wrap(err, dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		// Don't leave a truncated copy behind
		o.fs.Remove(dst)
		return errors.Wrap(err, dst)
	}
	return errors.Wrap(out.Close(), dst)
}

// checkFree returns AlreadyExists if dir already holds name
func (o *Ops) checkFree(dir, name string) error {
	entries, err := listing.Read(o.fs, dir)
	if err != nil {
		return errors.Wrap(err, dir)
	}
	if listing.Contains(entries, name) {
		return errors.NewAlreadyExists(name)
	}
	return nil
}

// ValidateName rejects names that can't be a single directory entry
func ValidateName(name string) error {
	if name == "" || listing.IsAnchorName(name) || strings.ContainsAny(name, `/\`) {
		return errors.NewInvalidName(name)
	}
	if strings.ContainsAny(name, "\x00\n\r") {
		return errors.NewInvalidName(name)
	}
	return nil
}
