package handler

import (
	assetapp "github.com/assettrack/backend/internal/application/asset"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles asset lifecycle API endpoints.
type AssetHandler struct {
	BaseHandler
	assets *assetapp.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assets *assetapp.AssetService) *AssetHandler {
	return &AssetHandler{assets: assets}
}

// RegisterRoutes registers asset routes on the given group.
func (h *AssetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	assets := rg.Group("/assets")
	{
		assets.POST("", middleware.RequireWriter(), h.Create)
		assets.GET("", h.List)
		assets.GET("/:id", h.GetByID)
		assets.PUT("/:id", middleware.RequireWriter(), h.Update)
		assets.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
		assets.POST("/:id/classify", middleware.RequireWriter(), h.Classify)
		assets.POST("/:id/relocate", middleware.RequireWriter(), h.Relocate)
		assets.POST("/:id/assign", middleware.RequireWriter(), h.Assign)
		assets.POST("/:id/unassign", middleware.RequireWriter(), h.Unassign)
		assets.POST("/:id/dispose", middleware.RequireWriter(), h.Dispose)
		assets.POST("/:id/restore", middleware.RequireAdmin(), h.Restore)
		assets.PUT("/:id/tag", middleware.RequireWriter(), h.UpdateTagID)
	}

	// tag lookup lives outside /assets to keep the :id wildcard unambiguous
	rg.GET("/asset-tags/:tag_id", h.GetByTagID)
}

// Create registers a new asset.
func (h *AssetHandler) Create(c *gin.Context) {
	var req assetapp.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.assets.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a single asset.
func (h *AssetHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.assets.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByTagID returns an asset by its physical tag.
func (h *AssetHandler) GetByTagID(c *gin.Context) {
	tagID := c.Param("tag_id")
	if tagID == "" {
		h.BadRequest(c, "Missing tag_id parameter")
		return
	}

	resp, err := h.assets.GetByTagID(c.Request.Context(), tagID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns a filtered, paginated asset listing.
func (h *AssetHandler) List(c *gin.Context) {
	var filter assetapp.AssetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.assets.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, pageSize := filter.Page, filter.PageSize
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// Update modifies an asset's descriptive details.
func (h *AssetHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Classify moves an asset to another category/subcategory.
func (h *AssetHandler) Classify(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.ClassifyAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.Classify(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Relocate moves an asset to another department/site.
func (h *AssetHandler) Relocate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.RelocateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.Relocate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Assign hands an asset to a person or team.
func (h *AssetHandler) Assign(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.AssignAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.Assign(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Unassign returns an asset to the available pool.
func (h *AssetHandler) Unassign(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.assets.Unassign(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Dispose retires an asset permanently.
func (h *AssetHandler) Dispose(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.DisposeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.Dispose(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Restore brings a disposed asset back into service.
func (h *AssetHandler) Restore(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.assets.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateTagID re-tags an asset.
func (h *AssetHandler) UpdateTagID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.UpdateTagIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.assets.UpdateTagID(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete soft-deletes an asset.
func (h *AssetHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.assets.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
