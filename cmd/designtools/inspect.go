package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
)

type inspectOptions struct {
	jsonOutput bool
}

type inspectPayload struct {
	ClassName string            `json:"className"`
	Values    map[string]string `json:"values"`
	Other     []string          `json:"other"`
}

func newInspectCmd(app *AppContext) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <class-string>",
		Short: "Show the style properties a class string sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.inspect")
			payload := inspectClassName(app.Table, args[0])
			logger.Debug(ctx, "class string inspected", "matched", len(payload.Values), "other", len(payload.Other))

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}
			return renderInspect(cmd, app.Table, payload)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func inspectClassName(table *fields.Table, className string) inspectPayload {
	values := table.Extract(className)
	payload := inspectPayload{
		ClassName: classname.Normalize(className),
		Values:    make(map[string]string, len(values)),
		Other:     table.Unmatched(className),
	}
	for f, v := range values {
		payload.Values[f.String()] = v
	}
	if payload.Other == nil {
		payload.Other = []string{}
	}
	sort.Sort(natural.StringSlice(payload.Other))
	return payload
}

func renderInspect(cmd *cobra.Command, table *fields.Table, payload inspectPayload) error {
	out := cmd.OutOrStdout()

	rows := make([][2]string, 0, len(table.Fields()))
	for _, f := range table.Fields() {
		rows = append(rows, [2]string{f.String(), payload.Values[f.String()]})
	}

	_, _ = fmt.Fprintln(out, headingStyle.Render("Properties"))
	_, _ = fmt.Fprint(out, renderRows(rows))

	if len(payload.Other) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, headingStyle.Render("Other classes"))
		for _, token := range payload.Other {
			_, _ = fmt.Fprintf(out, "  %s\n", token)
		}
	}
	return nil
}
