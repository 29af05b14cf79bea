// Package testutil provides utilities for testing dotlink components.
//
// Key components:
//   - TestEnvironment: an isolated home, repository and working directory
//     under t.TempDir, with XDG_STATE_HOME redirected so log files never
//     leave the sandbox
//   - File helpers: CreateFile, CreateDir, CreateSymlink and the matching
//     assertions
//
// All test data should be defined inline. Each test gets its own
// environment with no shared state.
package testutil
