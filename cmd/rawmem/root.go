package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the rawmem command tree. Each call returns a fresh tree so
// tests can run commands independently.
func NewRootCmd() *cobra.Command {
	var verbosity int
	logger := zerolog.Nop()

	root := &cobra.Command{
		Use:   "rawmem",
		Short: "Inspect and benchmark raw storage initialization",
		Long: `rawmem reports how element types are classified and measures the bulk
and elementwise construction paths against arena-backed storage.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbosity)
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(newFactsCmd())
	root.AddCommand(newBenchCmd(func() zerolog.Logger { return logger }))
	return root
}

// newLogger mirrors the verbosity levels of the other tools: warnings by
// default, one level more per -v.
func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	var level zerolog.Level
	switch verbosity {
	case 0:
		level = zerolog.WarnLevel
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if verbosity >= 2 {
		l = l.With().Caller().Logger()
	}
	return l
}
