package handler

import (
	"github.com/financespro/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the platform administration surface
type AdminHandler struct {
	BaseHandler
	adminService *identity.AdminService
	authGuard    gin.HandlerFunc
	adminGuard   gin.HandlerFunc
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *identity.AdminService, authGuard, adminGuard gin.HandlerFunc) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authGuard:    authGuard,
		adminGuard:   adminGuard,
	}
}

// RegisterRoutes registers admin routes behind both guards
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin", h.authGuard, h.adminGuard)
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id/status", h.SetUserStatus)
		admin.GET("/companies", h.ListCompanies)
		admin.GET("/recent-activity", h.RecentActivity)
	}
}

// Stats returns platform-wide totals
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.PlatformStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListUsers returns every registered account
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, users)
}

// GetUser returns a single account
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// SetUserStatus activates or suspends an account
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req identity.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	user, err := h.adminService.SetUserStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ListCompanies groups accounts by company name
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.adminService.ListCompanies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, companies)
}

// RecentActivity returns the latest registrations and invoices
func (h *AdminHandler) RecentActivity(c *gin.Context) {
	activity, err := h.adminService.RecentActivity(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, activity)
}
