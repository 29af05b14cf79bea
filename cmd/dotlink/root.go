package dotlink

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dotlink/internal/version"
	"github.com/arthur-debert/dotlink/pkg/config"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/settings"
	"github.com/arthur-debert/dotlink/pkg/style"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Deps are the process-level inputs of a run.
type Deps struct {
	Getenv   func(string) string
	Getwd    func() (string, error)
	RepoRoot func() (string, error)
	FS       types.FS
}

// DefaultDeps reads the real environment, working directory and executable
// location.
func DefaultDeps() Deps {
	return Deps{
		Getenv:   os.Getenv,
		Getwd:    os.Getwd,
		RepoRoot: paths.RepoRoot,
		FS:       filesystem.NewOS(),
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(DefaultDeps())
}

func newRootCmd(deps Deps) *cobra.Command {
	var (
		verbosity int
		s         *settings.Settings
	)

	rootCmd := &cobra.Command{
		Use:     "dotlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := settings.Load()
			if err != nil {
				return err
			}
			s = loaded

			stderr := cmd.ErrOrStderr()
			logging.SetupLogger(verbosity, logging.Options{
				Level:   s.Log.Level,
				Color:   colorFor(stderr),
				Console: stderr,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), deps, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runInstall resolves HOME, the repository root and the configuration, in
// that order, before touching the filesystem. The log file is the first
// thing written.
func runInstall(ctx context.Context, deps Deps, s *settings.Settings, out, stderr io.Writer) error {
	home, err := paths.HomeDir(deps.Getenv)
	if err != nil {
		return err
	}

	repoRoot, err := deps.RepoRoot()
	if err != nil {
		return err
	}

	wd, err := deps.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, MsgErrWorkingDir)
	}

	cfg, cfgPath, err := config.NewLoader(deps.FS, s.Config.Candidates).Load(wd)
	if err != nil {
		return err
	}

	if logFile, err := logging.AttachLogFile(s.Log.File); err != nil {
		palette := style.NewPalette(stderr, colorFor(stderr))
		fmt.Fprintln(stderr, palette.RenderWarning(fmt.Sprintf(MsgWarnLogFile, logFile, err)))
	}

	logger := logging.GetLogger("cmd.install")
	logger.Info().
		Str("home", home).
		Str("repoRoot", repoRoot).
		Str("config", cfgPath).
		Msg("Starting install")

	installer := linker.NewInstaller(deps.FS, out, logging.GetLogger("linker"))
	installer.Arrow = s.Output.Arrow

	_, err = installer.Install(ctx, linker.Env{
		Home:     home,
		RepoRoot: repoRoot,
		Config:   cfg,
	})
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// Run executes cmd and returns the process exit status. Fatal errors are
// printed to stderr with a hint for their kind.
func Run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		palette := style.NewPalette(stderr, colorFor(stderr))
		fmt.Fprintln(stderr, palette.RenderError(err))
		if hint := hintFor(err); hint != "" {
			fmt.Fprintln(stderr, palette.RenderHint(hint))
		}
		return 1
	}
	return 0
}

func hintFor(err error) string {
	switch errors.GetKind(err) {
	case errors.KindEnvironment:
		return MsgHintEnvironment
	case errors.KindConfiguration:
		return MsgHintConfiguration
	case errors.KindFilesystem:
		return MsgHintFilesystem
	default:
		return ""
	}
}

func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return style.ColorEnabled(f)
}
