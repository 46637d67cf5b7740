package config

import (
	"github.com/alexisbeaulieu97/designtools/internal/fields"
)

// Config represents the designtools configuration document.
type Config struct {
	Version  string              `yaml:"version" validate:"required,semver"`
	Log      LogSettings         `yaml:"log,omitempty"`
	Editor   EditorSettings      `yaml:"editor,omitempty"`
	Prefixes map[string]string   `yaml:"prefixes,omitempty" validate:"omitempty,dive,keys,field_name,endkeys,omitempty,class_prefix"`
	Values   map[string][]string `yaml:"values,omitempty" validate:"omitempty,dive,keys,field_name,endkeys,min=1,dive,required"`
}

// LogSettings controls the structured logger.
type LogSettings struct {
	Level  string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=auto json console"`
}

// EditorSettings holds editor defaults.
type EditorSettings struct {
	NewElementType string `yaml:"new_element_type,omitempty" validate:"omitempty,alpha,lowercase,max=32"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Log:     LogSettings{Level: "info", Format: "auto"},
		Editor:  EditorSettings{NewElementType: "p"},
	}
}

// Table builds the validated field table described by the configuration.
func (c *Config) Table() (*fields.Table, error) {
	if c == nil {
		return fields.DefaultTable(), nil
	}

	var prefixes map[fields.Field]string
	if len(c.Prefixes) > 0 {
		prefixes = make(map[fields.Field]string, len(c.Prefixes))
		for name, prefix := range c.Prefixes {
			prefixes[fields.Field(name)] = prefix
		}
	}

	var catalog fields.Catalog
	if len(c.Values) > 0 {
		catalog = make(fields.Catalog, len(c.Values))
		for name, values := range c.Values {
			catalog[fields.Field(name)] = append([]string(nil), values...)
		}
	}

	return fields.NewTable(prefixes, catalog)
}

func (c *Config) applyDefaults() {
	defaults := Default()
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Editor.NewElementType == "" {
		c.Editor.NewElementType = defaults.Editor.NewElementType
	}
}
