package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	require.NotNil(t, fs)

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "zshrc")
	require.NoError(t, os.WriteFile(target, []byte("export EDITOR=vim"), 0644))

	content, err := fs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "export EDITOR=vim", string(content))

	info, err := fs.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, "zshrc", info.Name())

	link := filepath.Join(tmpDir, ".zshrc")
	require.NoError(t, fs.Symlink(target, link))

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	// the link target is left alone
	_, err = fs.Stat(target)
	assert.NoError(t, err)
}

func TestRemoveBrokenSymlink(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	link := filepath.Join(tmpDir, ".gitconfig")
	require.NoError(t, fs.Symlink(filepath.Join(tmpDir, "missing"), link))

	_, err := fs.Stat(link)
	require.True(t, os.IsNotExist(err), "stat follows the dangling link")

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}
