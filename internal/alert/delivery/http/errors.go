package http

import (
	"net/http"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/errors"
	"alertr-srv/pkg/response"
)

const (
	msgNoChannels    = "No notification channels configured"
	msgMissingFields = "Missing required fields"
)

var errorMapping = response.ErrorMapping{
	alert.ErrNoChannels:     errors.NewHTTPError(http.StatusInternalServerError, msgNoChannels, http.StatusInternalServerError),
	alert.ErrInvalidPayload: errors.NewHTTPError(errors.CodeValidation, msgMissingFields, http.StatusBadRequest),
}
