package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// HomeDir returns the value of HOME from getenv. An unset, empty or relative
// value is an environment error.
func HomeDir(getenv func(string) string) (string, error) {
	home := getenv(EnvHome)
	if home == "" {
		return "", errors.New(errors.ErrEnvMissing, "home directory not set").
			WithDetail("variable", EnvHome)
	}
	if !filepath.IsAbs(home) {
		return "", errors.Newf(errors.ErrEnvMissing, "home directory %q is not absolute", home).
			WithDetail("variable", EnvHome)
	}
	return filepath.Clean(home), nil
}

// RepoRoot returns the canonical directory containing the running
// executable.
func RepoRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRootResolve, "failed to locate the running executable")
	}
	return ResolveRoot(exe)
}

// ResolveRoot resolves every symlink in program and returns the absolute
// directory that contains it.
func ResolveRoot(program string) (string, error) {
	abs, err := filepath.Abs(program)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootResolve, "failed to get absolute path for %s", program)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRootResolve, "failed to resolve %s", abs).
			WithDetail("path", abs)
	}

	return filepath.Dir(resolved), nil
}

// SourcePath returns root/group/file.
func SourcePath(root, group, file string) string {
	return filepath.Join(root, group, file)
}

// DestPath returns home/.file.
func DestPath(home, file string) string {
	return filepath.Join(home, "."+file)
}
