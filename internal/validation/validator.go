package validation

import (
	"errors"
	"fmt"
	"reflect"

	"shop-console/internal/render"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator whose output_format rule accepts the formats of the given registry
func NewValidator(formats *render.Registry) *Validator {
	v := validator.New()

	_ = v.RegisterValidation("output_format", func(fl validator.FieldLevel) bool {
		return formats.Has(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatErrors converts validation errors to "Namespace: message" lines.
// Errors that are not validation errors yield no lines.
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldErr.Namespace(), formatFieldError(fieldErr)))
	}
	return details
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return fmt.Sprintf("is required when %s is set", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "output_format":
		return fmt.Sprintf("must be a registered output format, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
