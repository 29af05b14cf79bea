// Package types holds the interfaces shared between dotlink packages.
package types
