package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/assettrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CronAuth guards the scheduled-task endpoints with a shared bearer secret.
// The comparison is constant-time. An empty configured secret disables the
// endpoints entirely rather than leaving them open.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Cron endpoints are not configured"))
			return
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing cron secret"))
			return
		}

		provided := strings.TrimPrefix(authHeader, BearerPrefix)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid cron secret"))
			return
		}

		c.Next()
	}
}
