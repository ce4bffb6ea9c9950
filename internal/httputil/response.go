// Package httputil holds the Gin helpers shared by the HTTP handlers: error
// responses and query parsing.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/serials/internal/errors"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorMapping struct {
	sentinel error
	status   int
	code     string
	message  string // empty means the error text is shown
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
}

func mapError(err error) (int, ErrorResponse) {
	for _, m := range errorMappings {
		if !apperrors.Is(err, m.sentinel) {
			continue
		}
		msg := m.message
		if msg == "" {
			msg = err.Error()
		}
		return m.status, ErrorResponse{Error: m.code, Message: msg}
	}
	return http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	}
}

// HandleErrorGin writes the response for an error returned by a use case.
// Unknown errors become a 500 whose body never carries the error text; the full
// chain is only logged.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	status, resp := mapError(err)
	if logger != nil {
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c, level, "request failed",
			slog.String("request_id", requestid.Get(c)),
			slog.Int("status_code", status),
			slog.String("error_code", resp.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(status, resp)
}

// HandleBadRequestGin writes a 400 for a body or parameter that could not be decoded.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusBadRequest, "bad_request", err, logger)
}

// HandleValidationErrorGin writes a 422 for a request that decoded but failed validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusUnprocessableEntity, "validation_error", err, logger)
}

func writeClientError(c *gin.Context, status int, code string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn(code,
			slog.String("request_id", requestid.Get(c)),
			slog.Any("error", err),
		)
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
