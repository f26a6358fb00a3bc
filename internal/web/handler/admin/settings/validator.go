package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents one failed form field.
type ErrorResponse struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

// XValidator wraps a validator instance for form structs.
type XValidator struct {
	validator *validator.Validate
}

// NewXValidator creates an XValidator.
func NewXValidator() XValidator {
	return XValidator{validator: validator.New()}
}

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data interface{}) []ErrorResponse {
	var validationErrors []ErrorResponse

	if errs := v.validator.Struct(data); errs != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(errs, &fieldErrors) {
			return []ErrorResponse{{Error: true, FailedField: "form", Tag: errs.Error()}}
		}

		for _, err := range fieldErrors {
			validationErrors = append(validationErrors, ErrorResponse{
				Error:       true,
				FailedField: err.Field(), // Export struct field name
				Tag:         err.Tag(),   // Export struct tag
				Value:       err.Value(), // Export field value
			})
		}
	}

	return validationErrors
}

// Messages formats the errors for the template.
func Messages(errs []ErrorResponse) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = "Field '" + e.FailedField + "' failed validation tag '" + e.Tag + "'"
	}

	return out
}
