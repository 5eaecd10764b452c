package handler

import (
	assetapp "github.com/assettrack/backend/internal/application/asset"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles physical audit record endpoints.
type AuditHandler struct {
	BaseHandler
	audits *assetapp.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(audits *assetapp.AuditService) *AuditHandler {
	return &AuditHandler{audits: audits}
}

// RegisterRoutes registers audit routes on the given group.
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets/:id/audits", middleware.RequireWriter(), h.Record)
	rg.GET("/assets/:id/audits", h.ListByAsset)
	rg.GET("/audits", h.List)
	rg.GET("/audits/:id", h.GetByID)
}

// Record stores the outcome of a physical asset audit.
func (h *AuditHandler) Record(c *gin.Context) {
	assetID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.CreateAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.audits.Record(c.Request.Context(), assetID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a single audit record.
func (h *AuditHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.audits.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByAsset returns the audit history of an asset, newest first.
func (h *AuditHandler) ListByAsset(c *gin.Context) {
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

	records, total, err := h.audits.ListByAsset(c.Request.Context(), assetID, page.Page, page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, total, page.Page, page.PageSize)
}

// List returns audit records across all assets, newest first.
func (h *AuditHandler) List(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.handleBindError(c, err)
		return
	}
	page.Normalize()

	records, total, err := h.audits.List(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, records, total, page.Page, page.PageSize)
}
