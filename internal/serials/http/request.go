// Package http provides HTTP handlers for serial generation and serial group management.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/allisson/serials/internal/httputil"
)

// bindJSON decodes the request body into req. A body that is not JSON is a 400;
// a well-formed body with a value of the wrong type or range is a 422.
// It reports whether decoding succeeded; on failure the response is already written.
func bindJSON(c *gin.Context, req any, logger *slog.Logger) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		httputil.HandleValidationErrorGin(c, err, logger)
		return false
	}

	httputil.HandleBadRequestGin(c, err, logger)
	return false
}
