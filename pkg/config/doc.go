// Package config loads the group → files mapping that drives the linker.
//
// Two group shapes are accepted and unified at load time:
//
//	{ "git": ["gitconfig", "gitignore"] }
//	{ "git": { "colorize": "red", "files": ["gitconfig"] } }
//
// Callers always see an ordered list of Groups, each with its ordered list
// of file names. Document order is preserved for JSON, YAML and TOML.
package config
