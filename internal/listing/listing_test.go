package listing

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAnchorsFirstAndSorted(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/zdir", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/work/a.txt", []byte("a"), 0o644))

	entries, err := Read(fs, "/work")
	require.NoError(t, err)

	assert.Equal(t, []string{".", "..", "a.txt", "b.txt", "zdir"}, Names(entries))
	assert.Equal(t, Directory, entries[0].Kind)
	assert.Equal(t, Directory, entries[1].Kind)
	assert.Equal(t, File, entries[2].Kind)
	assert.Equal(t, Directory, entries[4].Kind)
}

func TestReadEmptyDirectoryStillHasAnchors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0o755))

	entries, err := Read(fs, "/empty")
	require.NoError(t, err)
	assert.Equal(t, []string{".", ".."}, Names(entries))
}

func TestReadMissingDirectory(t *testing.T) {
	_, err := Read(afero.NewMemMapFs(), "/nope")
	assert.Error(t, err)
}

func TestReadFollowsDirectorySymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	tempDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "real"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(tempDir, "real"), filepath.Join(tempDir, "link")))
	require.NoError(t, os.Symlink(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "broken")))

	entries, err := Read(afero.NewOsFs(), tempDir)
	require.NoError(t, err)

	kinds := map[string]Kind{}
	for _, e := range entries {
		kinds[e.Name] = e.Kind
	}
	assert.Equal(t, Directory, kinds["link"])
	assert.Equal(t, File, kinds["broken"])
}

func TestAnchors(t *testing.T) {
	assert.True(t, Entry{Name: "."}.IsAnchor())
	assert.True(t, Entry{Name: ".."}.IsAnchor())
	assert.False(t, Entry{Name: "..."}.IsAnchor())
	assert.False(t, Entry{Name: ".hidden"}.IsAnchor())
}
