package testutil

import (
	"path/filepath"
	"testing"
)

// TestEnvironment is an isolated install setting: a home directory, a
// dotfiles repository and the working directory the configuration is read
// from.
type TestEnvironment struct {
	Home     string
	RepoRoot string
	WorkDir  string
	XDGState string

	t *testing.T
}

// NewTestEnvironment lays out home, repo, work and state directories under
// a fresh temp dir and points XDG_STATE_HOME at the state directory.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Home:     CreateDir(t, root, "home"),
		RepoRoot: CreateDir(t, root, "repo"),
		WorkDir:  CreateDir(t, root, "work"),
		XDGState: CreateDir(t, root, "state"),
		t:        t,
	}

	t.Setenv("XDG_STATE_HOME", env.XDGState)
	return env
}

// AddRepoFile writes <repo>/<group>/<file> and returns its path.
func (e *TestEnvironment) AddRepoFile(group, file, content string) string {
	e.t.Helper()
	return CreateFile(e.t, filepath.Join(e.RepoRoot, group), file, content)
}

// WriteConfig writes a configuration file named name into the working
// directory.
func (e *TestEnvironment) WriteConfig(name, content string) string {
	e.t.Helper()
	return CreateFile(e.t, e.WorkDir, name, content)
}

// Getenv resolves HOME to the environment's home directory and everything
// else to "".
func (e *TestEnvironment) Getenv(key string) string {
	if key == "HOME" {
		return e.Home
	}
	return ""
}

// Dest returns the destination path of file in home.
func (e *TestEnvironment) Dest(file string) string {
	return filepath.Join(e.Home, "."+file)
}

// Source returns the repository path of group/file.
func (e *TestEnvironment) Source(group, file string) string {
	return filepath.Join(e.RepoRoot, group, file)
}
