// Package linker replaces dotfiles in the home directory with symbolic links
// into the repository.
//
// For every (group, file) pair, in configuration order:
//
//  1. src = repoRoot/group/file, dest = home/.file
//  2. whatever sits at dest is removed; removal failures never stop the run
//  3. "<dest padded> ---> <src>" is written to the output
//  4. dest is created as a symlink to src; a failure here aborts the run
//
// The pass is sequential and not transactional. Running it again is the
// recovery path for a partial run.
package linker
