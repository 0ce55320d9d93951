package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// sessionCookieNames are the cookie kinds the external auth provider may
// set. The edge guard only checks presence; the session middleware parses
// the value as a JWT.
var sessionCookieNames = []string{
	"__Secure-session-token",
	"session-token",
}

// RequireSession authenticates API requests: bearer header or session
// cookie, HMAC-signed JWT, email claim required. Session issuance belongs
// to the external auth provider; this only verifies.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseSession(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		applyClaims(c, claims)
		if c.GetString("email") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has no email claim"})
			return
		}
		c.Next()
	}
}

// OptionalSession is RequireSession for browser-navigated dashboard pages:
// a missing or invalid session sets no claims and never aborts, leaving the
// sign-in redirect to the page-level access verifier.
func OptionalSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseSession(c, secret); err == nil {
			applyClaims(c, claims)
		}
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			return
		}
		if value != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

func parseSession(c *gin.Context, secret string) (jwt.MapClaims, error) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		tokenString = sessionCookie(c.Request)
	}
	if tokenString == "" {
		return nil, fmt.Errorf("no session token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}
	return tokenString
}

func sessionCookie(r *http.Request) string {
	for _, name := range sessionCookieNames {
		if ck, err := r.Cookie(name); err == nil && ck.Value != "" {
			return ck.Value
		}
	}
	return ""
}

// HasSessionCookie is the cheap presence check used by the edge guard; no
// parsing, no verification.
func HasSessionCookie(r *http.Request) bool {
	return sessionCookie(r) != ""
}

func applyClaims(c *gin.Context, claims jwt.MapClaims) {
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
}
