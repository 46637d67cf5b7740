package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtools/internal/editor"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	"github.com/alexisbeaulieu97/designtools/pkg/diff"
)

type setOptions struct {
	showDiff bool
}

func newSetCmd(app *AppContext) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set <class-string> <field> <value>",
		Short: "Set a style property on a class string",
		Long: `Set a style property by field name, replacing the token that carries the
field's current value. Negative values keep their sign in front of the prefix,
so marginTop -2 becomes -mt-2. An empty value removes the property.

Flags go before the class string; everything after it is read as arguments,
which keeps negative values like -2 from being parsed as flags.`,
		Example: `  designtools set "p-2 w-4" width 8
  designtools set "p-2 mt-1" marginTop -2
  designtools set "text-sm font-bold" fontSize ""
  designtools set --diff "p-2 w-4" width 8`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.set")
			err := runSet(ctx, logger, cmd, app.Table, args, opts)
			if err != nil {
				logger.Error(ctx, "set command failed", "field", args[1], "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Print a token diff instead of the result")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runSet(ctx context.Context, logger ports.Logger, cmd *cobra.Command, table *fields.Table, args []string, opts *setOptions) error {
	className, fieldName, value := args[0], args[1], args[2]

	field, err := fields.Parse(fieldName)
	if err != nil {
		return newCommandError("set field", fmt.Sprintf("resolving %q", fieldName), err, "Run 'designtools fields' to list the supported fields.")
	}

	store := editor.NewStore(table, editor.WithLogger(logger))
	if _, err := store.Dispatch(ctx, editor.SelectNode(&editor.Node{Type: "div", ClassName: className})); err != nil {
		return newCommandError("set field", "selecting node", err, "This is a bug; please report it.")
	}

	state, err := store.SetField(ctx, field, value)
	if err != nil {
		return newCommandError("set field", fmt.Sprintf("%s=%q", field, value), err, "Run 'designtools fields' to see the values each field accepts.")
	}

	out := cmd.OutOrStdout()
	if opts.showDiff {
		rendered := diff.ClassDiff(className, state.ClassName, "before", "after")
		if rendered == "" {
			_, _ = fmt.Fprintln(out, "no changes")
			return nil
		}
		_, _ = fmt.Fprint(out, rendered)
		return nil
	}

	_, _ = fmt.Fprintln(out, state.ClassName)
	return nil
}
