package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/financespro/backend/internal/infrastructure/auth"
	"github.com/financespro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	ClaimsKey     = "auth_claims"
	TenantIDKey   = "auth_tenant_id"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authenticate validates the bearer token on every request and stores
// the claims and tenant id in the gin context. No database read happens
// here; the token alone establishes identity.
func Authenticate(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Missing token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrCodeTokenExpired, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		tenantID, err := claims.TenantID()
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TenantIDKey, tenantID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(message))
}

// GetClaims retrieves the validated token claims from the gin context
func GetClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(ClaimsKey); exists {
		if authClaims, ok := claims.(*auth.Claims); ok {
			return authClaims
		}
	}
	return nil
}

// GetTenantID retrieves the authenticated tenant id from the gin context
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	if tenantID, exists := c.Get(TenantIDKey); exists {
		if id, ok := tenantID.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// abortForbidden ends the request with a 403
func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(message))
}
