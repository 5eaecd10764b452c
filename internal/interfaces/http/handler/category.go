package handler

import (
	catalogapp "github.com/assettrack/backend/internal/application/catalog"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler handles category and subcategory endpoints.
type CategoryHandler struct {
	BaseHandler
	categories    *catalogapp.CategoryService
	subCategories *catalogapp.SubCategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *catalogapp.CategoryService, subCategories *catalogapp.SubCategoryService) *CategoryHandler {
	return &CategoryHandler{
		categories:    categories,
		subCategories: subCategories,
	}
}

// RegisterRoutes registers catalog routes on the given group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.POST("", middleware.RequireWriter(), h.Create)
		categories.GET("", h.List)
		categories.GET("/:id", h.GetByID)
		categories.PUT("/:id", middleware.RequireWriter(), h.Update)
		categories.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
		categories.POST("/:id/activate", middleware.RequireWriter(), h.Activate)
		categories.POST("/:id/deactivate", middleware.RequireWriter(), h.Deactivate)
		categories.GET("/:id/subcategories", h.ListSubCategories)
	}

	subCategories := rg.Group("/subcategories")
	{
		subCategories.POST("", middleware.RequireWriter(), h.CreateSubCategory)
		subCategories.GET("", h.ListAllSubCategories)
		subCategories.GET("/:id", h.GetSubCategory)
		subCategories.PUT("/:id", middleware.RequireWriter(), h.UpdateSubCategory)
		subCategories.DELETE("/:id", middleware.RequireAdmin(), h.DeleteSubCategory)
	}
}

// Create adds a new asset category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.categories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetByID returns a single category.
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns a filtered category listing.
func (h *CategoryHandler) List(c *gin.Context) {
	var filter catalogapp.CategoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.categories.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// Update renames a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.categories.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate re-enables a category for classification.
func (h *CategoryHandler) Activate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.categories.Activate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate hides a category from new classifications.
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.categories.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an unused category.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateSubCategory adds a subcategory under an existing category.
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	var req catalogapp.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.subCategories.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSubCategory returns a single subcategory.
func (h *CategoryHandler) GetSubCategory(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.subCategories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSubCategories returns the subcategories of a category, ordered by code.
func (h *CategoryHandler) ListSubCategories(c *gin.Context) {
	categoryID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	items, err := h.subCategories.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// ListAllSubCategories returns a filtered subcategory listing.
func (h *CategoryHandler) ListAllSubCategories(c *gin.Context) {
	var filter catalogapp.CategoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.subCategories.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// UpdateSubCategory renames a subcategory.
func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.subCategories.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteSubCategory removes an unused subcategory.
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.subCategories.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func normalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return 20
	}
	return size
}
