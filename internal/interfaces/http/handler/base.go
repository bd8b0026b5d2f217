package handler

import (
	"errors"
	"net/http"

	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/infrastructure/logger"
	"github.com/financespro/backend/internal/interfaces/http/dto"
	"github.com/financespro/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getTenantID extracts the authenticated tenant id or fails the request
// with a 401. Routes using it must sit behind the auth middleware.
func getTenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse("Authentication required"))
		return uuid.Nil, false
	}
	return tenantID, true
}

// parseIDParam parses the :id path parameter as a UUID
func (h *BaseHandler) parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessMessage sends a 200 response with only a message
func (h *BaseHandler) SuccessMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewSuccessMessage(message))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// BindingError sends a 400 response describing the invalid fields
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleError converts domain errors to HTTP responses. Unexpected
// errors are logged and answered with a generic 500; internals never
// reach the client.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status == http.StatusInternalServerError {
			h.logInternal(c, err)
			c.JSON(status, dto.NewErrorResponse("An unexpected error occurred"))
			return
		}
		c.JSON(status, dto.NewErrorResponse(domainErr.Message))
		return
	}

	h.logInternal(c, err)
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse("An unexpected error occurred"))
}

func (h *BaseHandler) logInternal(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
}
