package fields

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

var defaultPrefixes = map[Field]string{
	Width:           "w",
	MinWidth:        "min-w",
	Height:          "h",
	MinHeight:       "min-h",
	MarginTop:       "mt",
	MarginRight:     "mr",
	MarginBottom:    "mb",
	MarginLeft:      "ml",
	PaddingTop:      "pt",
	PaddingRight:    "pr",
	PaddingBottom:   "pb",
	PaddingLeft:     "pl",
	FontSize:        "text",
	FontWeight:      "font",
	TextColor:       "text",
	TextTransform:   "",
	Leading:         "leading",
	BackgroundColor: "bg",
}

// Values maps fields to their current value in a class string.
type Values map[Field]string

// Table maps every field to the class prefix of its utility family. A Table is
// immutable once built and safe to share.
type Table struct {
	prefixes map[Field]string
	catalog  Catalog
}

type prefixEntry struct {
	Field  string `validate:"required,field_name"`
	Prefix string `validate:"omitempty,class_prefix"`
}

// DefaultTable returns the stock prefix table and catalog.
func DefaultTable() *Table {
	table, err := NewTable(nil, nil)
	if err != nil {
		panic(fmt.Sprintf("default field table is invalid: %v", err))
	}
	return table
}

// NewTable builds a table from the defaults with overrides applied, and
// validates the result.
func NewTable(prefixOverrides map[Field]string, catalogOverrides Catalog) (*Table, error) {
	prefixes := make(map[Field]string, len(defaultPrefixes)+len(prefixOverrides))
	for f, p := range defaultPrefixes {
		prefixes[f] = p
	}
	for f, p := range prefixOverrides {
		prefixes[f] = p
	}

	table := &Table{
		prefixes: prefixes,
		catalog:  DefaultCatalog().Merge(catalogOverrides),
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks every entry and reports all problems at once.
func (t *Table) Validate() error {
	var errs error
	v := validatorInstance()

	for _, f := range sortedFields(t.prefixes) {
		prefix := t.prefixes[f]
		if err := v.Struct(prefixEntry{Field: string(f), Prefix: prefix}); err != nil {
			errs = multierr.Append(errs, describeEntryError(f, prefix, err))
			continue
		}
		if prefix == "" && len(t.catalog[f]) == 0 {
			errs = multierr.Append(errs, designerrors.NewValidationError(
				"prefixes."+string(f), "a field without a prefix needs catalog values", nil))
		}
	}

	for _, f := range sortedFields(t.catalog) {
		if !f.Valid() {
			errs = multierr.Append(errs, designerrors.NewValidationError(
				"values."+string(f), "unknown field", nil))
		}
	}

	for _, f := range allFields {
		if _, ok := t.prefixes[f]; !ok {
			errs = multierr.Append(errs, designerrors.NewValidationError(
				"prefixes."+string(f), "missing prefix", nil))
		}
	}

	return errs
}

func sortedFields[V any](m map[Field]V) []Field {
	keys := make([]Field, 0, len(m))
	for f := range m {
		keys = append(keys, f)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func describeEntryError(f Field, prefix string, err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		switch verrs[0].Tag() {
		case "field_name", "required":
			return designerrors.NewValidationError("prefixes."+string(f), "unknown field", err)
		case "class_prefix":
			return designerrors.NewValidationError("prefixes."+string(f),
				fmt.Sprintf("invalid class prefix %q", prefix), err)
		}
	}
	return designerrors.NewValidationError("prefixes."+string(f), err.Error(), err)
}

// Fields returns the fields in panel order.
func (t *Table) Fields() []Field {
	return All()
}

// Prefix returns the class prefix for f.
func (t *Table) Prefix(f Field) (string, bool) {
	prefix, ok := t.prefixes[f]
	return prefix, ok
}

// Catalog returns a copy of the table's value catalog.
func (t *Table) Catalog() Catalog {
	return Catalog{}.Merge(t.catalog)
}

// Token builds the class token for value under f's prefix. An empty value
// yields an empty token, which the class editor treats as "nothing". A value
// that would split into several tokens is rejected.
func (t *Table) Token(f Field, value string) (string, error) {
	prefix, ok := t.prefixes[f]
	if !ok {
		return "", designerrors.NewFieldError(string(f), nil)
	}
	if len(strings.Fields(value)) > 1 {
		return "", designerrors.NewFieldError(string(f), fmt.Errorf("value %q must be a single token", value))
	}
	return classname.Token(prefix, value), nil
}

// Match reports the value token carries for f, if it belongs to f's family.
func (t *Table) Match(f Field, token string) (string, bool) {
	prefix, ok := t.prefixes[f]
	if !ok {
		return "", false
	}

	value := token
	if prefix != "" {
		value, ok = classname.Value(token, prefix)
		if !ok {
			return "", false
		}
	}

	if len(t.catalog[f]) > 0 {
		if !t.catalog.Allows(f, value) {
			return "", false
		}
	} else if prefix == "" {
		return "", false
	}
	return value, true
}

// Extract reads the current value of every field from className. The first
// matching token wins; fields with no matching token are absent.
func (t *Table) Extract(className string) Values {
	values := make(Values)
	for _, token := range classname.Tokens(className) {
		for _, f := range allFields {
			if _, seen := values[f]; seen {
				continue
			}
			if value, ok := t.Match(f, token); ok {
				values[f] = value
				break
			}
		}
	}
	return values
}

// Unmatched returns the tokens of className that belong to no field, in order.
func (t *Table) Unmatched(className string) []string {
	var rest []string
	for _, token := range classname.Tokens(className) {
		matched := false
		for _, f := range allFields {
			if _, ok := t.Match(f, token); ok {
				matched = true
				break
			}
		}
		if !matched {
			rest = append(rest, token)
		}
	}
	return rest
}
