package linker

import (
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Env carries the values resolved once at startup.
type Env struct {
	Home     string
	RepoRoot string
	Config   *config.Configuration
}

// Link is one planned symlink.
type Link struct {
	Group  string
	File   string
	Source string
	Dest   string
}

// Plan lists the links for env in configuration order without touching the
// filesystem.
func Plan(env Env) []Link {
	links := make([]Link, 0, env.Config.Len())
	for _, g := range env.Config.Groups() {
		for _, f := range g.Files {
			links = append(links, Link{
				Group:  g.Name,
				File:   f,
				Source: paths.SourcePath(env.RepoRoot, g.Name, f),
				Dest:   paths.DestPath(env.Home, f),
			})
		}
	}
	return links
}
