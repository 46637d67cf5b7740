package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	"github.com/alexisbeaulieu97/designtools/pkg/diff"
)

type replaceOptions struct {
	oldToken string
	newToken string
	showDiff bool
}

func newReplaceCmd(app *AppContext) *cobra.Command {
	opts := &replaceOptions{}

	cmd := &cobra.Command{
		Use:   "replace <class-string>",
		Short: "Swap one class token for another",
		Long: `Replace the first occurrence of --old with --new in a class string.

An absent --old appends --new; an empty --new removes --old. The result is
printed normalised to single spaces.`,
		Example: `  designtools replace "p-2 w-4 mt-1" --old w-4 --new w-8
  designtools replace "p-2 w-4" --old w-4
  designtools replace "p-2" --new uppercase`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.replace")
			return runReplace(ctx, logger, cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.oldToken, "old", "", "Token to replace")
	cmd.Flags().StringVar(&opts.newToken, "new", "", "Replacement token (empty removes --old)")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print a token diff instead of the result")

	return cmd
}

func runReplace(ctx context.Context, logger ports.Logger, cmd *cobra.Command, className string, opts *replaceOptions) error {
	result := classname.Replace(className, opts.oldToken, opts.newToken)

	changes := classname.Diff(className, result)
	logger.Debug(ctx, "class tokens replaced",
		"old_token", opts.oldToken,
		"new_token", opts.newToken,
		"removed", changes.Removed,
		"added", changes.Added,
	)

	out := cmd.OutOrStdout()
	if opts.showDiff {
		rendered := diff.ClassDiff(className, result, "before", "after")
		if rendered == "" {
			_, _ = fmt.Fprintln(out, "no changes")
			return nil
		}
		_, _ = fmt.Fprint(out, rendered)
		return nil
	}

	_, _ = fmt.Fprintln(out, result)
	return nil
}
