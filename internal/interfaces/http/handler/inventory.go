package handler

import (
	inventoryapp "github.com/assettrack/backend/internal/application/inventory"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles inventory item and stock movement endpoints.
type InventoryHandler struct {
	BaseHandler
	inventory *inventoryapp.Service
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(inventory *inventoryapp.Service) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// RegisterRoutes registers inventory routes on the given group.
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		items := inventory.Group("/items")
		{
			items.POST("", middleware.RequireWriter(), h.CreateItem)
			items.GET("", h.ListItems)
			items.GET("/:id", h.GetItem)
			items.PUT("/:id", middleware.RequireWriter(), h.UpdateItem)
			items.POST("/:id/activate", middleware.RequireWriter(), h.ActivateItem)
			items.POST("/:id/deactivate", middleware.RequireWriter(), h.DeactivateItem)
			items.POST("/:id/receive", middleware.RequireWriter(), h.ReceiveStock)
			items.POST("/:id/consume", middleware.RequireWriter(), h.ConsumeStock)
			items.POST("/:id/adjust", middleware.RequireWriter(), h.AdjustStock)
			items.GET("/:id/transactions", h.ListTransactions)
		}

		// SKU lookup and the low-stock report live beside /items so the
		// :id wildcard stays unambiguous.
		inventory.GET("/skus/:sku", h.GetItemBySKU)
		inventory.GET("/low-stock", h.ListLowStock)
		inventory.GET("/transactions", h.ListAllTransactions)
	}
}

// CreateItem registers a new inventory item with zero stock.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	if userID := getUserID(c); userID != uuid.Nil {
		req.CreatedBy = &userID
	}

	resp, err := h.inventory.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetItem returns a single inventory item.
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.inventory.GetItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetItemBySKU looks an item up by its SKU.
func (h *InventoryHandler) GetItemBySKU(c *gin.Context) {
	sku := c.Param("sku")

	resp, err := h.inventory.GetItemBySKU(c.Request.Context(), sku)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListItems returns a filtered item listing.
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var filter inventoryapp.ItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.inventory.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// ListLowStock returns active items at or below their minimum quantity.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.inventory.ListBelowMinimum(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// UpdateItem edits an item's descriptive fields.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.inventory.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ActivateItem re-enables an inactive item.
func (h *InventoryHandler) ActivateItem(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.inventory.ActivateItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeactivateItem retires an item from stock operations.
func (h *InventoryHandler) DeactivateItem(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.inventory.DeactivateItem(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ReceiveStock adds stock to an item.
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req inventoryapp.ReceiveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}
	req.CreatedBy = getUsername(c)

	resp, err := h.inventory.ReceiveStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ConsumeStock removes stock from an item.
func (h *InventoryHandler) ConsumeStock(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req inventoryapp.ConsumeStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}
	req.CreatedBy = getUsername(c)

	resp, err := h.inventory.ConsumeStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// AdjustStock corrects an item's quantity by a signed delta.
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}
	req.CreatedBy = getUsername(c)

	resp, err := h.inventory.AdjustStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListTransactions returns the movement ledger of one item, newest first.
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.handleBindError(c, err)
		return
	}
	page.Normalize()

	items, total, err := h.inventory.ListTransactions(c.Request.Context(), id, page.Page, page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, page.Page, page.PageSize)
}

// ListAllTransactions returns the stock ledger across all items.
func (h *InventoryHandler) ListAllTransactions(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.handleBindError(c, err)
		return
	}
	page.Normalize()

	items, total, err := h.inventory.ListAllTransactions(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, page.Page, page.PageSize)
}
