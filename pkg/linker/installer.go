package linker

import (
	"context"
	"fmt"
	"io"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultArrow separates destination and source in output lines.
const DefaultArrow = "--->"

// Result describes a finished (or aborted) pass.
type Result struct {
	// Linked holds the links created, in order.
	Linked []Link
	// IgnoredRemovals counts removal failures other than not-found.
	IgnoredRemovals int
}

// Installer performs the link pass.
type Installer struct {
	fs     types.FS
	out    io.Writer
	logger zerolog.Logger

	// Arrow is printed between the padded destination and the source.
	Arrow string
}

// NewInstaller creates an installer writing one line per link to out.
func NewInstaller(fs types.FS, out io.Writer, logger zerolog.Logger) *Installer {
	return &Installer{
		fs:     fs,
		out:    out,
		logger: logger,
		Arrow:  DefaultArrow,
	}
}

// Install replaces every destination in env with a link to its source. It
// stops at the first symlink that cannot be created and returns the partial
// result together with a SYMLINK_CREATE error.
func (i *Installer) Install(ctx context.Context, env Env) (*Result, error) {
	done := logging.LogOperationStart(i.logger, "install")
	defer done()

	links := Plan(env)
	width := Padding(env.Config, env.Home)
	result := &Result{Linked: make([]Link, 0, len(links))}

	i.logger.Info().
		Str("home", env.Home).
		Str("repoRoot", env.RepoRoot).
		Int("links", len(links)).
		Int("padding", width).
		Msg("Installing links")

	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome, rmErr := RemoveExisting(i.fs, link.Dest)
		if outcome == RemoveIgnored {
			result.IgnoredRemovals++
			i.logger.Warn().
				Err(rmErr).
				Str("dest", link.Dest).
				Msg("Could not remove existing destination")
		}

		fmt.Fprintf(i.out, "%-*s %s %s\n", width, link.Dest, i.Arrow, link.Source)

		if err := i.fs.Symlink(link.Source, link.Dest); err != nil {
			return result, errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", link.Dest).
				WithDetail("dest", link.Dest).
				WithDetail("src", link.Source).
				WithDetail("group", link.Group)
		}

		i.logger.Debug().
			Str("group", link.Group).
			Str("dest", link.Dest).
			Str("src", link.Source).
			Stringer("previous", outcome).
			Msg("Linked")

		result.Linked = append(result.Linked, link)
	}

	i.logger.Info().
		Int("linked", len(result.Linked)).
		Int("ignoredRemovals", result.IgnoredRemovals).
		Msg("Install finished")

	return result, nil
}
