// Package paths resolves the two roots the linker works between and maps
// configuration entries onto them.
//
// # Environment Variables
//
//   - HOME: required, the directory links are created in
//
// The repository root is never configured: it is the symlink-resolved
// directory of the running executable, so links stay valid when the binary
// is invoked through a symlink.
//
// # Mapping
//
//	SourcePath(root, "zsh", "zshrc") == root/zsh/zshrc
//	DestPath(home, "zshrc")          == home/.zshrc
package paths
