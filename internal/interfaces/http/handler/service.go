package handler

import (
	"github.com/financespro/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ServiceHandler handles service catalog requests
type ServiceHandler struct {
	BaseHandler
	serviceCatalog *catalog.ServiceCatalog
	authGuard      gin.HandlerFunc
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(serviceCatalog *catalog.ServiceCatalog, authGuard gin.HandlerFunc) *ServiceHandler {
	return &ServiceHandler{
		serviceCatalog: serviceCatalog,
		authGuard:      authGuard,
	}
}

// RegisterRoutes registers service catalog routes
func (h *ServiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	services := rg.Group("/services", h.authGuard)
	{
		services.GET("", h.List)
		services.POST("", h.Create)
		services.GET("/:id", h.Get)
		services.PUT("/:id", h.Update)
		services.DELETE("/:id", h.Delete)
	}
}

// List returns all of the tenant's services
func (h *ServiceHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	services, err := h.serviceCatalog.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, services)
}

// Get returns one service
func (h *ServiceHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	service, err := h.serviceCatalog.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// Create adds a new service
func (h *ServiceHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	var req catalog.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	service, err := h.serviceCatalog.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, service)
}

// Update overwrites a service's attributes
func (h *ServiceHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req catalog.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	service, err := h.serviceCatalog.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, service)
}

// Delete removes a service
func (h *ServiceHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.serviceCatalog.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessMessage(c, "Service supprimé")
}
