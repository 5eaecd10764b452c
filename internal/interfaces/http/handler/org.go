package handler

import (
	orgapp "github.com/assettrack/backend/internal/application/org"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OrgHandler handles department, site and company profile endpoints.
type OrgHandler struct {
	BaseHandler
	departments *orgapp.DepartmentService
	sites       *orgapp.SiteService
	company     *orgapp.CompanyService
}

// NewOrgHandler creates a new OrgHandler.
func NewOrgHandler(departments *orgapp.DepartmentService, sites *orgapp.SiteService, company *orgapp.CompanyService) *OrgHandler {
	return &OrgHandler{
		departments: departments,
		sites:       sites,
		company:     company,
	}
}

// SetLogoRequest carries the storage key of an uploaded company logo.
type SetLogoRequest struct {
	StorageKey string `json:"storage_key" binding:"required"`
}

// RegisterRoutes registers organization routes on the given group.
func (h *OrgHandler) RegisterRoutes(rg *gin.RouterGroup) {
	departments := rg.Group("/departments")
	{
		departments.POST("", middleware.RequireWriter(), h.CreateDepartment)
		departments.GET("", h.ListDepartments)
		departments.GET("/:id", h.GetDepartment)
		departments.PUT("/:id", middleware.RequireWriter(), h.UpdateDepartment)
		departments.DELETE("/:id", middleware.RequireAdmin(), h.DeleteDepartment)
	}

	sites := rg.Group("/sites")
	{
		sites.POST("", middleware.RequireWriter(), h.CreateSite)
		sites.GET("", h.ListSites)
		sites.GET("/:id", h.GetSite)
		sites.PUT("/:id", middleware.RequireWriter(), h.UpdateSite)
		sites.DELETE("/:id", middleware.RequireAdmin(), h.DeleteSite)
	}

	company := rg.Group("/company-info")
	{
		company.GET("", h.GetCompanyInfo)
		company.POST("", middleware.RequireAdmin(), h.CreateCompanyInfo)
		company.PUT("", middleware.RequireAdmin(), h.UpdateCompanyInfo)
		company.PUT("/logo", middleware.RequireAdmin(), h.SetCompanyLogo)
	}
}

// CreateDepartment adds a new department.
func (h *OrgHandler) CreateDepartment(c *gin.Context) {
	var req orgapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.departments.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetDepartment returns a single department.
func (h *OrgHandler) GetDepartment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.departments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListDepartments returns a filtered department listing.
func (h *OrgHandler) ListDepartments(c *gin.Context) {
	var filter orgapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.departments.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// UpdateDepartment changes department details.
func (h *OrgHandler) UpdateDepartment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req orgapp.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.departments.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteDepartment removes a department with no assigned assets.
func (h *OrgHandler) DeleteDepartment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateSite adds a new site.
func (h *OrgHandler) CreateSite(c *gin.Context) {
	var req orgapp.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.sites.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetSite returns a single site.
func (h *OrgHandler) GetSite(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	resp, err := h.sites.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListSites returns a filtered site listing.
func (h *OrgHandler) ListSites(c *gin.Context) {
	var filter orgapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.handleBindError(c, err)
		return
	}

	items, total, err := h.sites.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, normalizePage(filter.Page), normalizePageSize(filter.PageSize))
}

// UpdateSite changes site details.
func (h *OrgHandler) UpdateSite(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req orgapp.UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.sites.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteSite removes a site with no located assets.
func (h *OrgHandler) DeleteSite(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.sites.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetCompanyInfo returns the singleton company profile.
func (h *OrgHandler) GetCompanyInfo(c *gin.Context) {
	resp, err := h.company.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateCompanyInfo creates the company profile.
func (h *OrgHandler) CreateCompanyInfo(c *gin.Context) {
	var req orgapp.CompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.company.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateCompanyInfo replaces the company profile.
func (h *OrgHandler) UpdateCompanyInfo(c *gin.Context) {
	var req orgapp.CompanyInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.company.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCompanyLogo records the storage key of the uploaded company logo.
func (h *OrgHandler) SetCompanyLogo(c *gin.Context) {
	var req SetLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleBindError(c, err)
		return
	}

	resp, err := h.company.SetLogo(c.Request.Context(), req.StorageKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
