package linker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreRemoveError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RemoveOutcome
	}{
		{"no error", nil, Removed},
		{"not found", &fs.PathError{Op: "remove", Path: "/h/.x", Err: fs.ErrNotExist}, NothingToRemove},
		{"permission", &fs.PathError{Op: "remove", Path: "/h/.x", Err: fs.ErrPermission}, RemoveIgnored},
		{"anything else", errors.New("directory not empty"), RemoveIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IgnoreRemoveError(tt.err))
		})
	}
}

func TestRemoveExisting(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dest string)
		want    RemoveOutcome
		remains bool
	}{
		{
			name:  "missing",
			setup: func(t *testing.T, dest string) {},
			want:  NothingToRemove,
		},
		{
			name: "regular file",
			setup: func(t *testing.T, dest string) {
				require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))
			},
			want: Removed,
		},
		{
			name: "symlink",
			setup: func(t *testing.T, dest string) {
				target := filepath.Join(filepath.Dir(dest), "target")
				require.NoError(t, os.WriteFile(target, []byte("t"), 0644))
				require.NoError(t, os.Symlink(target, dest))
			},
			want: Removed,
		},
		{
			name: "broken symlink",
			setup: func(t *testing.T, dest string) {
				require.NoError(t, os.Symlink(filepath.Join(filepath.Dir(dest), "gone"), dest))
			},
			want: Removed,
		},
		{
			name: "directory",
			setup: func(t *testing.T, dest string) {
				require.NoError(t, os.MkdirAll(filepath.Join(dest, "nested"), 0755))
			},
			want:    RemoveIgnored,
			remains: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), ".vimrc")
			tt.setup(t, dest)

			got, _ := RemoveExisting(filesystem.NewOS(), dest)
			assert.Equal(t, tt.want, got)

			_, err := os.Lstat(dest)
			if tt.remains {
				assert.NoError(t, err)
			} else {
				assert.True(t, os.IsNotExist(err))
			}
		})
	}
}

func TestRemoveOutcomeString(t *testing.T) {
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "absent", NothingToRemove.String())
	assert.Equal(t, "ignored", RemoveIgnored.String())
}
