package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
)

// Group is one named set of files living in the <repoRoot>/<Name> folder.
type Group struct {
	Name string
	// Colorize is carried over from the record shape and never acted upon.
	Colorize string
	Files    []string
}

// Configuration is the ordered group list. It is not mutated after load.
type Configuration struct {
	groups []Group
}

// New builds an in-process configuration literal.
func New(groups ...Group) *Configuration {
	return &Configuration{groups: groups}
}

// Groups returns the groups in document order.
func (c *Configuration) Groups() []Group {
	if c == nil {
		return nil
	}
	return c.groups
}

// Files returns the files of the first group called name. Repeated group
// names are kept in Groups, but later groups with the same name are ignored
// here.
func (c *Configuration) Files(name string) []string {
	for _, g := range c.Groups() {
		if g.Name == name {
			return g.Files
		}
	}
	return nil
}

// Len returns the total number of file entries across all groups.
func (c *Configuration) Len() int {
	n := 0
	for _, g := range c.Groups() {
		n += len(g.Files)
	}
	return n
}

// Validate checks that every file name is a single path segment, so that
// its destination lands directly in the home directory.
func (c *Configuration) Validate() error {
	for _, g := range c.Groups() {
		if g.Name == "" {
			return errors.New(errors.ErrConfigParse, "group name must not be empty")
		}
		for i, f := range g.Files {
			if err := validateFile(f); err != nil {
				return errors.Wrapf(err, errors.ErrConfigParse, "group %q entry %d", g.Name, i).
					WithDetail("group", g.Name).
					WithDetail("file", f)
			}
		}
	}
	return nil
}

func validateFile(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("file name is empty")
	case name == "." || name == "..":
		return fmt.Errorf("file name %q is not a file", name)
	case strings.Contains(name, "/") || strings.ContainsRune(name, os.PathSeparator):
		return fmt.Errorf("file name %q must not contain a path separator", name)
	}
	return nil
}
