package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

// apiError is the canonical error envelope for all API failures.
type apiError struct {
	Message    string    `json:"message"`
	HTTPStatus int       `json:"httpStatus"`
	Timestamp  time.Time `json:"timestamp"`
	Field      string    `json:"field,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps each domain failure kind to its HTTP status and renders the
//     message verbatim.
//   - Echoes the offending field name for lookup misses on login.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, field := resolveError(err, log, c)
		_ = c.JSON(code, apiError{
			Message:    msg,
			HTTPStatus: code,
			Timestamp:  time.Now().UTC(),
			Field:      field,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg, field string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// First violated constraint, message returned verbatim.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message, ""
	}

	// Known domain failures → deterministic statuses. The wrong-password
	// case deliberately stays 400, not 401.
	switch {
	case errors.Is(err, domain.ErrEmailInUse):
		return http.StatusConflict, domain.ErrEmailInUse.Error(), ""
	case errors.Is(err, domain.ErrEmailNotRegistered):
		return http.StatusBadRequest, domain.ErrEmailNotRegistered.Error(), "email"
	case errors.Is(err, domain.ErrIncorrectPassword):
		return http.StatusBadRequest, domain.ErrIncorrectPassword.Error(), ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", ""
}
