package handler

import (
	maintapp "github.com/assettrack/backend/internal/application/maintenance"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaintenanceHandler handles maintenance record endpoints.
type MaintenanceHandler struct {
	BaseHandler
	maintenance *maintapp.Service
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenance *maintapp.Service) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// RegisterRoutes registers maintenance routes on the given group.
func (h *MaintenanceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	maintenance := rg.Group("/maintenance")
	{
		maintenance.POST("", middleware.RequireWriter(), h.Schedule)
		maintenance.GET("", h.List)
		maintenance.GET("/:id", h.GetByID)
		maintenance.PUT("/:id", middleware.RequireWriter(), h.Update)
		maintenance.POST("/:id/start", middleware.RequireWriter(), h.Start)
		maintenance.POST("/:id/complete", middleware.RequireWriter(), h.Complete)
		maintenance.POST("/:id/cancel", middleware.RequireWriter(), h.Cancel)
	}

	// Per-asset history lives under the asset resource.
	rg.GET("/assets/:id/maintenance", h.ListByAsset)
}

// Schedule creates a maintenance record with optional part lines.
func (h *MaintenanceHandler) Schedule(c *gin.Context) {
	var req maintapp.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.maintenance.Schedule(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a single maintenance record.
func (h *MaintenanceHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.maintenance.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns a filtered maintenance listing.
func (h *MaintenanceHandler) List(c *gin.Context) {
	var filter maintapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.maintenance.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// ListByAsset returns the maintenance history of one asset.
func (h *MaintenanceHandler) ListByAsset(c *gin.Context) {
	assetID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.handleBindError(c, err)
		return
	}
	page.Normalize()

	items, total, err := h.maintenance.ListByAsset(c.Request.Context(), assetID, page.Page, page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, page.Page, page.PageSize)
}

// Update edits an open maintenance record.
func (h *MaintenanceHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req maintapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.maintenance.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Start moves a scheduled record to in_progress.
func (h *MaintenanceHandler) Start(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req maintapp.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.maintenance.Start(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Complete closes a record as completed and consumes its part lines.
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req maintapp.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.maintenance.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel closes a record as cancelled without touching stock.
func (h *MaintenanceHandler) Cancel(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req maintapp.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.maintenance.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
