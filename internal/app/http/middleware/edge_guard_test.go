package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dashboard-gateway/internal/domain/access"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGuardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EdgeGuard())
	handler := func(c *gin.Context) { c.String(http.StatusOK, "reached") }
	r.GET("/health", handler)
	r.GET("/dashboard", handler)
	r.GET("/dashboard/:tier", handler)
	r.GET("/api/auth/session", handler)
	return r
}

func TestEdgeGuard(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		withCookie bool
		wantStatus int
		wantTarget string
	}{
		{
			name:       "bare dashboard root without session redirects to login",
			path:       "/dashboard",
			wantStatus: http.StatusTemporaryRedirect,
			wantTarget: access.SignInPath,
		},
		{
			name:       "bare dashboard root with session passes",
			path:       "/dashboard",
			withCookie: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "tier sub-path passes untouched even without session",
			path:       "/dashboard/pro",
			wantStatus: http.StatusOK,
		},
		{
			name:       "allowlisted auth path passes",
			path:       "/api/auth/session",
			wantStatus: http.StatusOK,
		},
		{
			name:       "health passes",
			path:       "/health",
			wantStatus: http.StatusOK,
		},
	}

	r := newGuardRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.withCookie {
				req.AddCookie(&http.Cookie{Name: "session-token", Value: "opaque"})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantTarget != "" {
				assert.Equal(t, tt.wantTarget, w.Header().Get("Location"))
			}
		})
	}
}

func TestEdgeGuard_SecureCookieVariantCounts(t *testing.T) {
	r := newGuardRouter()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "__Secure-session-token", Value: "opaque"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
