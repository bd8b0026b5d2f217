package middleware

import (
	"errors"

	"github.com/financespro/backend/internal/domain/identity"
	"github.com/financespro/backend/internal/domain/shared"
	"github.com/financespro/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminOnly restricts a route group to administrator accounts. It runs
// after Authenticate and re-reads the user row, so a demoted or deleted
// account loses admin access as soon as its next request arrives, token
// expiry notwithstanding.
func AdminOnly(userRepo identity.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid token")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				abortUnauthorized(c, dto.ErrCodeUnauthorized, "Account no longer exists")
				return
			}
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		if user.IsSuspended() || !user.IsAdministrator() {
			abortForbidden(c, "Administrator access required")
			return
		}

		c.Next()
	}
}
