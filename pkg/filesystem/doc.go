// Package filesystem provides filesystem implementations for dotlink.
//
// This package contains implementations of the types.FS interface used by
// the configuration loader and the linker.
package filesystem
