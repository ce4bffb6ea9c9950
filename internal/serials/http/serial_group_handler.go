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

// SerialGroupHandler handles HTTP requests for serial group management.
type SerialGroupHandler struct {
	groupUseCase serialsUseCase.SerialGroupUseCase
	logger       *slog.Logger
}

// NewSerialGroupHandler creates a new serial group handler with required dependencies.
func NewSerialGroupHandler(
	groupUseCase serialsUseCase.SerialGroupUseCase,
	logger *slog.Logger,
) *SerialGroupHandler {
	return &SerialGroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateHandler generates and stores a named serial group.
// POST /v1/serial-groups - Body {"name": "...", "count": N}.
// Returns 201 Created, or 409 Conflict when the name is taken.
func (h *SerialGroupHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateSerialGroupRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	group, err := h.groupUseCase.Create(c.Request.Context(), req.Name, uint32(*req.Count))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSerialGroupToResponse(group))
}

// GetHandler retrieves a serial group by name.
// GET /v1/serial-groups/:name
func (h *SerialGroupHandler) GetHandler(c *gin.Context) {
	group, err := h.groupUseCase.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSerialGroupToResponse(group))
}

// ListHandler lists serial groups ordered by name.
// GET /v1/serial-groups?offset=0&limit=50
func (h *SerialGroupHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	groups, err := h.groupUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSerialGroupsToListResponse(groups))
}

// DeleteHandler removes a serial group.
// DELETE /v1/serial-groups/:name - Returns 204 No Content.
func (h *SerialGroupHandler) DeleteHandler(c *gin.Context) {
	if err := h.groupUseCase.Delete(c.Request.Context(), c.Param("name")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

// ExportHandler writes a serial group to the export bucket.
// POST /v1/serial-groups/:name/export - Returns 200 OK with the object key.
func (h *SerialGroupHandler) ExportHandler(c *gin.Context) {
	key, err := h.groupUseCase.Export(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ExportSerialGroupResponse{Key: key})
}

// ExportAllHandler writes every serial group to the export bucket.
// POST /v1/exports - Returns 200 OK with the object keys in name order.
func (h *SerialGroupHandler) ExportAllHandler(c *gin.Context) {
	keys, err := h.groupUseCase.ExportAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ExportSerialGroupsResponse{Keys: keys})
}
