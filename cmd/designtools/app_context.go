package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/designtools/internal/config"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
	logginginfra "github.com/alexisbeaulieu97/designtools/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
)

// AppContext bundles the services every command shares. It is populated once
// the root command has parsed its flags.
type AppContext struct {
	Logger ports.Logger
	Config *config.Config
	Table  *fields.Table
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return newCommandError("load configuration", flags.configPath, err, "Fix the config file or pass --config with a valid path.")
	}

	table, err := cfg.Table()
	if err != nil {
		return newCommandError("build field table", "applying prefix and value overrides", err, "Check the prefixes and values sections of your config.")
	}

	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	stderr := cmd.ErrOrStderr()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:        stderr,
		Level:         level,
		HumanReadable: humanReadable(cfg.Log.Format, stderr),
		Layer:         "application",
	})
	if err != nil {
		return newCommandError("configure logging", "parsing --log-level", err, "Use one of debug, info, warn or error.")
	}

	a.Logger = logger
	a.Config = cfg
	a.Table = table
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logginginfra.NewNoOpLogger()
	}
	return ctx, logger.With("component", name)
}

func humanReadable(format string, writer io.Writer) bool {
	switch strings.ToLower(format) {
	case "json":
		return false
	case "console":
		return true
	default:
		return isTerminal(writer)
	}
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
