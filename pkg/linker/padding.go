package linker

import (
	"unicode/utf8"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Padding returns the width of the longest destination path across every
// file of every group, 0 for an empty configuration. Widths count runes, the
// unit fmt pads in.
func Padding(cfg *config.Configuration, home string) int {
	width := 0
	for _, g := range cfg.Groups() {
		for _, f := range g.Files {
			if n := utf8.RuneCountInString(paths.DestPath(home, f)); n > width {
				width = n
			}
		}
	}
	return width
}
