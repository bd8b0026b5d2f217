package handler

import (
	"github.com/financespro/backend/internal/application/billing"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice and dashboard requests
type InvoiceHandler struct {
	BaseHandler
	invoiceService   *billing.InvoiceService
	dashboardService *billing.DashboardService
	authGuard        gin.HandlerFunc
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(
	invoiceService *billing.InvoiceService,
	dashboardService *billing.DashboardService,
	authGuard gin.HandlerFunc,
) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:   invoiceService,
		dashboardService: dashboardService,
		authGuard:        authGuard,
	}
}

// RegisterRoutes registers invoice routes. The dashboard sits under the
// factures prefix because its figures are derived from invoices.
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	factures := rg.Group("/factures", h.authGuard)
	{
		factures.GET("", h.List)
		factures.POST("", h.Create)
		factures.GET("/stats/dashboard", h.Dashboard)
		factures.GET("/:id", h.Get)
		factures.PUT("/:id", h.Update)
		factures.DELETE("/:id", h.Delete)
	}
}

// List returns all of the tenant's invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}

// Get returns one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Create issues a new invoice with a freshly allocated number
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	var req billing.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, invoice)
}

// Update overwrites an invoice's attributes and recomputes its totals
func (h *InvoiceHandler) Update(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req billing.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoice)
}

// Delete removes an invoice. Deleting an id that no longer exists still
// succeeds; the operation is idempotent.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessMessage(c, "Facture supprimée")
}

// Dashboard returns the tenant's aggregated figures
func (h *InvoiceHandler) Dashboard(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Dashboard(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
