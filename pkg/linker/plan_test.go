package linker

import (
	"testing"

	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	cfg := config.New(
		config.Group{Name: "zsh", Files: []string{"zshrc", "zprofile"}},
		config.Group{Name: "git", Colorize: "red", Files: []string{"gitconfig"}},
	)

	links := Plan(Env{Home: "/home/u", RepoRoot: "/repo", Config: cfg})

	assert.Equal(t, []Link{
		{Group: "zsh", File: "zshrc", Source: "/repo/zsh/zshrc", Dest: "/home/u/.zshrc"},
		{Group: "zsh", File: "zprofile", Source: "/repo/zsh/zprofile", Dest: "/home/u/.zprofile"},
		{Group: "git", File: "gitconfig", Source: "/repo/git/gitconfig", Dest: "/home/u/.gitconfig"},
	}, links)
}

func TestPlanEmpty(t *testing.T) {
	assert.Empty(t, Plan(Env{Home: "/home/u", RepoRoot: "/repo", Config: config.New()}))
}
