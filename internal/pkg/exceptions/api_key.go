package exceptions

import (
	"medicenter-service/internal/pkg/constvars"
	"net/http"
)

func ErrInvalidAPIKey(err error) error {
	return BuildNewCustomError(err, http.StatusUnauthorized, "Invalid API key", constvars.ErrDevInvalidAPIKey)
}

func ErrAPIKeyRequired(err error) error {
	return BuildNewCustomError(err, http.StatusUnauthorized, "API key is required", constvars.ErrDevAPIKeyRequired)
}
