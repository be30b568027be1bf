package main

import (
	"context"
	"os"

	"github.com/LuanGibin/XlsxSender/cmd/xlsxsender/commands"
	"github.com/LuanGibin/XlsxSender/cmd/xlsxsender/opts"
	"github.com/LuanGibin/XlsxSender/pkg/config"
	"github.com/LuanGibin/XlsxSender/pkg/operation"
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/status"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	sourceDir  string
	debug      bool
)

// setupLogging builds the base logger and stores it in the context.
func setupLogging(ctx context.Context) context.Context {
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	return logger.WithContext(ctx)
}

// addRootFlags adds shared flags to the root command and wires the debug
// flag into the context logger once flags are parsed.
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "config file path")
	cmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", "", "source folder (overrides config)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
			cmd.SetContext(logger.WithContext(cmd.Context()))
		}
	}
}

// newRootOpts creates the shared dependencies once flags are parsed.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	if sourceDir != "" {
		cfg.Source = sourceDir
	}
	if debug {
		cfg.Debug = true
	}

	store := status.NewStore()
	logger := zerolog.Ctx(ctx)

	return &opts.RootOpts{
		Config:     cfg,
		Store:      store,
		Scanner:    scanner.New(store, scanner.WithExtension(cfg.Extension), scanner.WithIgnoreGlobs(cfg.IgnoreGlobs)),
		Runner:     operation.NewRunner(logger, cfg.Async),
		UserLogger: userlog.NewUserLogger(ctx),
		Picker:     commands.NewTerminalPicker(),
	}, nil
}
