package handler

import (
	"github.com/financespro/backend/internal/application/identity"
	"github.com/financespro/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	authGuard   gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, authGuard gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		authGuard:   authGuard,
	}
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", h.authGuard, h.Me)
	}
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Login authenticates an account
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.BadRequest(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid token")
		return
	}

	result, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
