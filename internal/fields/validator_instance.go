package fields

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_name", func(fl validator.FieldLevel) bool {
			return Field(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("class_prefix", func(fl validator.FieldLevel) bool {
			return ValidPrefix(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidPrefix reports whether prefix is a well-formed utility-class prefix.
// Prefixes never carry the sign; Token places it in front.
func ValidPrefix(prefix string) bool {
	return prefixPattern.MatchString(prefix)
}
