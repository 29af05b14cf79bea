package linker

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotlink/pkg/types"
)

// RemoveOutcome is what happened when clearing a destination.
type RemoveOutcome int

const (
	// Removed means an existing file or link was deleted.
	Removed RemoveOutcome = iota
	// NothingToRemove means dest did not exist.
	NothingToRemove
	// RemoveIgnored means removal failed for another reason and the failure
	// was swallowed. The following symlink call reports the real problem if
	// dest is still in the way.
	RemoveIgnored
)

func (o RemoveOutcome) String() string {
	switch o {
	case Removed:
		return "removed"
	case NothingToRemove:
		return "absent"
	default:
		return "ignored"
	}
}

// IgnoreRemoveError is the removal policy: not-found is silent, any other
// error is ignored but reported as RemoveIgnored.
func IgnoreRemoveError(err error) RemoveOutcome {
	switch {
	case err == nil:
		return Removed
	case os.IsNotExist(err):
		return NothingToRemove
	default:
		return RemoveIgnored
	}
}

// RemoveExisting deletes the file, symlink or dangling symlink at dest.
// Directories are never unlinked and are left in place. The returned
// error is informational only.
func RemoveExisting(fs types.FS, dest string) (RemoveOutcome, error) {
	info, err := fs.Lstat(dest)
	if err != nil {
		return IgnoreRemoveError(err), err
	}
	if info.IsDir() {
		return RemoveIgnored, fmt.Errorf("%s: is a directory", dest)
	}

	err = fs.Remove(dest)
	return IgnoreRemoveError(err), err
}
