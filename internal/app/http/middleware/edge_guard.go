package middleware

import (
	"net/http"
	"strings"

	"dashboard-gateway/internal/domain/access"

	"github.com/gin-gonic/gin"
)

const protectedPrefix = "/dashboard"

// Paths the guard never touches: auth callbacks and static assets.
var guardAllowlist = []string{
	"/api/auth",
	"/health",
	"/static",
	"/favicon.ico",
}

// EdgeGuard is the coarse request-level gate in front of every route. It
// only checks session-cookie presence, and only redirects the bare
// /dashboard root; any deeper dashboard path passes through so the
// page-level verifier can make the fine-grained (and expensive,
// provider-calling) decision. The split keeps billing and CRM out of the
// hot path for requests that could never render a dashboard anyway.
func EdgeGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, prefix := range guardAllowlist {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		if strings.HasPrefix(path, protectedPrefix) {
			if path == protectedPrefix && !HasSessionCookie(c.Request) && bearerToken(c) == "" {
				c.Redirect(http.StatusTemporaryRedirect, access.SignInPath)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
