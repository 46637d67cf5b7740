package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtools/internal/editor"
	"github.com/alexisbeaulieu97/designtools/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	"github.com/alexisbeaulieu97/designtools/internal/session"
)

var nodeChangeEventTypes = []string{
	ports.EventUpdateFileClassName,
	ports.EventUpdateFileText,
	ports.EventCreateFileElement,
}

func newSessionCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session <script.yaml>",
		Short: "Replay an editing session and print the node change events",
		Long: `Replay a scripted editing session against a fresh editor store. Every node
change event is printed to stdout as one JSON object per line, in the order the
edits were made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.session")
			logger.Info(ctx, "replaying session", "script_path", args[0])
			err := runSession(ctx, logger, cmd, app, args[0])
			if err != nil {
				logger.Error(ctx, "session command failed", "script_path", args[0], "error", err)
			}
			return err
		},
	}

	return cmd
}

func runSession(ctx context.Context, logger ports.Logger, cmd *cobra.Command, app *AppContext, path string) error {
	script, err := session.Load(path)
	if err != nil {
		return newCommandError("replay session", fmt.Sprintf("loading %q", path), err, "Check the script against the session file format in the README.")
	}

	publisher := events.NewLoggingPublisher(logger)
	for _, eventType := range nodeChangeEventTypes {
		sub, err := publisher.Subscribe(eventType, jsonLineHandler(cmd.OutOrStdout()))
		if err != nil {
			return newCommandError("replay session", "subscribing to node change events", err, "This is a bug; please report it.")
		}
		defer sub.Unsubscribe()
	}

	store := editor.NewStore(app.Table,
		editor.WithPublisher(publisher),
		editor.WithLogger(logger),
		editor.WithElementType(app.Config.Editor.NewElementType),
	)

	if _, err := session.NewRunner(store, logger).Run(ctx, script); err != nil {
		return newCommandError("replay session", path, err, "Fix the failing step and run the session again.")
	}
	return nil
}

func jsonLineHandler(w io.Writer) ports.EventHandler {
	encoder := json.NewEncoder(w)
	return func(_ context.Context, event ports.DomainEvent) error {
		return encoder.Encode(event)
	}
}
