package handler

import (
	leaseapp "github.com/assettrack/backend/internal/application/lease"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaseHandler handles lease endpoints.
type LeaseHandler struct {
	BaseHandler
	leases *leaseapp.Service
}

// NewLeaseHandler creates a new LeaseHandler.
func NewLeaseHandler(leases *leaseapp.Service) *LeaseHandler {
	return &LeaseHandler{leases: leases}
}

// RegisterRoutes registers lease routes on the given group.
func (h *LeaseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	leases := rg.Group("/leases")
	{
		leases.POST("", middleware.RequireWriter(), h.Create)
		leases.GET("", h.List)
		leases.GET("/:id", h.GetByID)
		leases.POST("/:id/return", middleware.RequireWriter(), h.Return)
		leases.POST("/:id/cancel", middleware.RequireWriter(), h.Cancel)
		leases.POST("/:id/extend", middleware.RequireWriter(), h.Extend)
	}

	// Per-asset lease history lives under the asset resource.
	rg.GET("/assets/:id/leases", h.ListByAsset)
}

// Create opens a lease on an available asset.
func (h *LeaseHandler) Create(c *gin.Context) {
	var req leaseapp.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.leases.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a single lease.
func (h *LeaseHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.leases.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns a filtered lease listing.
func (h *LeaseHandler) List(c *gin.Context) {
	var filter leaseapp.LeaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.leases.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// ListByAsset returns the lease history of one asset.
func (h *LeaseHandler) ListByAsset(c *gin.Context) {
	assetID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var filter leaseapp.LeaseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}
	filter.AssetID = &assetID

	items, total, err := h.leases.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// Return closes a lease and frees the asset.
func (h *LeaseHandler) Return(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req leaseapp.ReturnLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.leases.Return(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel voids an active lease.
func (h *LeaseHandler) Cancel(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req leaseapp.CancelLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.leases.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Extend moves a lease's end date forward.
func (h *LeaseHandler) Extend(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req leaseapp.ExtendLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.leases.Extend(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
