package middleware

import (
	"net/http"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireRole creates middleware that requires one of the given roles.
// It must run after JWTAuth so the claims are in the context.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	allowed := make(map[identity.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if !allowed[identity.Role(claims.Role)] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient role for this operation"))
			return
		}

		c.Next()
	}
}

// RequireWriter requires a role that may modify data (admin or manager).
func RequireWriter() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin, identity.RoleManager)
}

// RequireAdmin requires the admin role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(identity.RoleAdmin)
}
