package handler

import (
	"time"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	leaseapp "github.com/assettrack/backend/internal/application/lease"
	maintapp "github.com/assettrack/backend/internal/application/maintenance"
	"github.com/gin-gonic/gin"
)

// CronHandler exposes the housekeeping sweeps to an external scheduler.
// The routes are guarded by the cron bearer secret, not by user auth.
type CronHandler struct {
	BaseHandler
	leases            *leaseapp.Service
	maintenance       *maintapp.Service
	documents         *assetapp.DocumentService
	staleUploadMaxAge time.Duration
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(leases *leaseapp.Service, maintenance *maintapp.Service, documents *assetapp.DocumentService, staleUploadMaxAge time.Duration) *CronHandler {
	return &CronHandler{
		leases:            leases,
		maintenance:       maintenance,
		documents:         documents,
		staleUploadMaxAge: staleUploadMaxAge,
	}
}

// RegisterRoutes registers cron routes on the given group.
func (h *CronHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cron := rg.Group("/cron")
	{
		cron.POST("/lease-sweep", h.LeaseSweep)
		cron.POST("/maintenance-sweep", h.MaintenanceSweep)
		cron.POST("/document-cleanup", h.DocumentCleanup)
	}
}

// LeaseSweep marks active leases past their end date as overdue.
func (h *CronHandler) LeaseSweep(c *gin.Context) {
	result, err := h.leases.SweepOverdue(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// MaintenanceSweep reports scheduled maintenance whose time has come.
func (h *CronHandler) MaintenanceSweep(c *gin.Context) {
	result, err := h.maintenance.SweepDue(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DocumentCleanup removes uploads that were initiated but never confirmed.
func (h *CronHandler) DocumentCleanup(c *gin.Context) {
	removed, err := h.documents.CleanupStalePending(c.Request.Context(), h.staleUploadMaxAge)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"removed": removed})
}
