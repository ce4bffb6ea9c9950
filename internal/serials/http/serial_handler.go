package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/serials/internal/httputil"
	"github.com/allisson/serials/internal/serials/http/dto"
	serialsUseCase "github.com/allisson/serials/internal/serials/usecase"
	customValidation "github.com/allisson/serials/internal/validation"
)

// SerialHandler exposes one-shot serial generation over HTTP.
type SerialHandler struct {
	serialUseCase serialsUseCase.SerialUseCase
	logger        *slog.Logger
}

// NewSerialHandler creates a new serial handler with required dependencies.
func NewSerialHandler(serialUseCase serialsUseCase.SerialUseCase, logger *slog.Logger) *SerialHandler {
	return &SerialHandler{
		serialUseCase: serialUseCase,
		logger:        logger,
	}
}

// GenerateHandler generates count random serials. Nothing is stored.
// POST /v1/serials - Body {"count": N}.
// Returns 200 OK with the serials in generation order.
func (h *SerialHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateSerialsRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	serials := h.serialUseCase.GenerateSerials(c.Request.Context(), uint32(*req.Count))

	c.JSON(http.StatusOK, dto.MapSerialsToResponse(serials))
}
