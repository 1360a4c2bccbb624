package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded configuration. The service refuses to
// start on any failure rather than limping along with bad settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors turns validator output into one readable
// multi-line error for startup logs.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

// tagTemplates phrases the common validation tags; {param} is replaced
// with the tag's parameter.
var tagTemplates = map[string]string{
	"required":    "is required",
	"required_if": "is required when {param}",
	"min":         "must be at least {param}",
	"max":         "must be at most {param}",
	"oneof":       "must be one of: {param}",
	"url":         "must be a valid URL",
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	tmpl, ok := tagTemplates[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}

	return field + " " + strings.ReplaceAll(tmpl, "{param}", e.Param())
}

// formatFieldPath rewrites "Config.Pricing.TaxRate" as "pricing.taxrate"
// so errors name the keys users actually set.
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
