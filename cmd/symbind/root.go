package main

import (
	"log"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stackb/symbind/pkg/config"
	"github.com/stackb/symbind/pkg/logger"
	"github.com/stackb/symbind/pkg/progress"
)

// app holds the state shared by the subcommands.
type app struct {
	logLevel     string
	showProgress bool

	logger   zerolog.Logger
	progress mobyprogress.Output
	// report prints command results.
	report logger.Log
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "symbind",
		Short:         "Resolve references to external packages into import tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, a.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log_level", "info", "log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&a.showProgress, "progress", false, "report progress on stderr")

	root.AddCommand(
		newCheckCmd(a),
		newFmtCmd(a),
		newImportsCmd(a),
		newDumpCmd(a),
	)
	return root
}

// setup builds the logger, progress output and reporter of the command.
func (a *app) setup(cmd *cobra.Command, level string) error {
	l, err := logger.New(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = l
	a.progress = progress.Discard
	if a.showProgress {
		a.progress = progress.NewOutput(cmd.ErrOrStderr())
	}
	a.report = log.New(cmd.OutOrStdout(), "", 0)
	return nil
}

// loadConfig reads the project file.  Its log_level applies unless
// --log_level was given.
func (a *app) loadConfig(cmd *cobra.Command, filename string) (*config.Config, error) {
	cfg, err := config.Load(filename)
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("log_level") && cfg.LogLevel != a.logLevel {
		if err := a.setup(cmd, cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
