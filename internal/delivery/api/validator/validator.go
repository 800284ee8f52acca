// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "mapbook/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed carrying one "field: rule" entry per failure.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	failures := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failure := fieldErr.Field() + ": " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			failure += "=" + fieldErr.Param()
		}
		failures = append(failures, failure)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(failures, "; "))
}
