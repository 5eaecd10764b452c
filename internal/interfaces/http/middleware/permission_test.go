package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/assettrack/backend/internal/domain/identity"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPermissionTestRouter(role string, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	injectClaims := func(c *gin.Context) {
		if role != "" {
			c.Set(JWTClaimsKey, &auth.Claims{Role: role})
		}
		c.Next()
	}

	r.DELETE("/assets/:id", injectClaims, mw, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		mw   gin.HandlerFunc
		want int
	}{
		{"admin passes admin check", "admin", RequireAdmin(), http.StatusNoContent},
		{"manager fails admin check", "manager", RequireAdmin(), http.StatusForbidden},
		{"manager passes writer check", "manager", RequireWriter(), http.StatusNoContent},
		{"viewer fails writer check", "viewer", RequireWriter(), http.StatusForbidden},
		{"unknown role fails", "superuser", RequireWriter(), http.StatusForbidden},
		{"missing claims is unauthorized", "", RequireWriter(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newPermissionTestRouter(tt.role, tt.mw)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/assets/abc", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireRole_Multiple(t *testing.T) {
	r := newPermissionTestRouter("viewer", RequireRole(identity.RoleViewer, identity.RoleManager))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/assets/abc", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
