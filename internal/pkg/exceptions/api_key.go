package exceptions

import (
	"lisagent-service/internal/pkg/constvars"
	"net/http"
)

func ErrInvalidAPIKey(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, "Invalid API key", constvars.ErrDevInvalidAPIKey)
}

func ErrAPIKeyRequired(err error) *CustomError {
	return BuildNewCustomError(err, http.StatusUnauthorized, "API key is required", constvars.ErrDevAPIKeyRequired)
}
