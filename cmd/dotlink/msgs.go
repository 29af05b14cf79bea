package dotlink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Link dotfiles from this repository into $HOME"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"

	// Error messages
	MsgErrWorkingDir = "failed to get working directory"

	// Warnings
	MsgWarnLogFile = "could not open log file %s, logging to the console only: %v"

	// Hints printed under a fatal error
	MsgHintEnvironment   = "Set HOME to your home directory and run dotlink again."
	MsgHintConfiguration = "Fix the configuration file and run dotlink again."
	MsgHintFilesystem    = "Links created so far were kept. Fix the problem and run dotlink again."
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
