package handler

import (
	assetapp "github.com/assettrack/backend/internal/application/asset"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles asset document endpoints: presigned uploads,
// listings, downloads and deletion.
type DocumentHandler struct {
	BaseHandler
	documents *assetapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documents *assetapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// RegisterRoutes registers document routes on the given group.
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assets/:id/documents", middleware.RequireWriter(), h.InitiateUpload)
	rg.GET("/assets/:id/documents", h.ListByAsset)

	docs := rg.Group("/documents")
	{
		docs.POST("/:id/confirm", middleware.RequireWriter(), h.ConfirmUpload)
		docs.GET("/:id/download", h.GetDownloadURL)
		docs.DELETE("/:id", middleware.RequireWriter(), h.Delete)
	}
}

// InitiateUpload creates a pending document and returns a presigned PUT URL.
func (h *DocumentHandler) InitiateUpload(c *gin.Context) {
	assetID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req assetapp.InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	var createdBy *uuid.UUID
	if userID := getUserID(c); userID != uuid.Nil {
		createdBy = &userID
	}

	resp, err := h.documents.InitiateUpload(c.Request.Context(), assetID, req, createdBy)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ConfirmUpload marks a pending document as uploaded and active.
func (h *DocumentHandler) ConfirmUpload(c *gin.Context) {
	documentID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.documents.ConfirmUpload(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListByAsset returns the active documents of an asset. Served from the
// listing cache when warm.
func (h *DocumentHandler) ListByAsset(c *gin.Context) {
	assetID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	docs, err := h.documents.ListByAsset(c.Request.Context(), assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, docs)
}

// GetDownloadURL returns a presigned GET URL for an active document.
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	documentID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.documents.GetDownloadURL(c.Request.Context(), documentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a document and its stored object.
func (h *DocumentHandler) Delete(c *gin.Context) {
	documentID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.documents.Delete(c.Request.Context(), documentID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
