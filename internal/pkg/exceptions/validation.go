package exceptions

import (
	"lisagent-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		switch firstErr.Tag() {
		case "required":
			return fieldName + " is required"
		case "url":
			return fieldName + " must be a valid URL"
		case "max":
			return fieldName + " is too long"
		default:
			return fieldName + " is invalid"
		}
	}
	return constvars.ErrClientCannotProcessRequest
}
