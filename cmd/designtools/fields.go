package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/designtools/internal/fields"
)

type fieldsOptions struct {
	jsonOutput bool
}

type fieldDescription struct {
	Field  string   `json:"field"`
	Prefix string   `json:"prefix"`
	Values []string `json:"values,omitempty"`
}

func newFieldsCmd(app *AppContext) *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the editable fields with their class prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptions := describeFields(app.Table)
			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(descriptions)
			}

			rows := make([][2]string, 0, len(descriptions))
			for _, d := range descriptions {
				summary := d.Prefix
				if summary == "" {
					summary = "(no prefix)"
				}
				if len(d.Values) > 0 {
					summary += "  " + mutedStyle.Render(summarizeValues(d.Values))
				}
				rows = append(rows, [2]string{d.Field, summary})
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("Fields"))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderRows(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func describeFields(table *fields.Table) []fieldDescription {
	catalog := table.Catalog()
	out := make([]fieldDescription, 0, len(table.Fields()))
	for _, f := range table.Fields() {
		prefix, _ := table.Prefix(f)
		out = append(out, fieldDescription{
			Field:  f.String(),
			Prefix: prefix,
			Values: catalog.Values(f),
		})
	}
	return out
}

const maxListedValues = 6

func summarizeValues(values []string) string {
	if len(values) <= maxListedValues {
		return strings.Join(values, ", ")
	}
	return fmt.Sprintf("%s, ... (%d values)", strings.Join(values[:maxListedValues], ", "), len(values))
}
