package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

// ValidateConfig performs schema validation and checks that the field table the
// configuration describes can be built.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return designerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if _, err := cfg.Table(); err != nil {
		return err
	}

	return nil
}

// convertValidationError normalizes validator errors into designtools validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return designerrors.NewValidationError(field, msg, err)
	}

	return designerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Log.Level" into "log.level" and leaves map
// keys such as "Prefixes[marginTop]" in their original case.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		name, key, hasKey := strings.Cut(part, "[")
		name = strings.ToLower(name)
		if hasKey {
			name += "[" + key
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
