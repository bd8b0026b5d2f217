package handler

import (
	"github.com/financespro/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client registry requests
type ClientHandler struct {
	BaseHandler
	clientService *partner.ClientService
	authGuard     gin.HandlerFunc
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *partner.ClientService, authGuard gin.HandlerFunc) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		authGuard:     authGuard,
	}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients", h.authGuard)
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// List returns all of the tenant's clients
func (h *ClientHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, clients)
}

// Get returns one client
func (h *ClientHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Create adds a new client
func (h *ClientHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	var req partner.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, client)
}

// Update overwrites a client's attributes
func (h *ClientHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req partner.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, client)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessMessage(c, "Client supprimé")
}
