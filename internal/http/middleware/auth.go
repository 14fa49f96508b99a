package middleware

import (
	"net/http"
	"strings"

	"javaterra/internal/services"
	"javaterra/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AdminCookie    = "admin_token"
	adminClaimsKey = "admin_claims"
)

// TokenVerifier is satisfied by services.AuthService.
type TokenVerifier interface {
	Verify(token string) (services.AdminClaims, error)
}

// AdminToken reads the bearer token, falling back to the session cookie.
func AdminToken(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader("Authorization")); h != "" {
		if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
			return strings.TrimSpace(h[7:])
		}
	}
	if v, err := c.Cookie(AdminCookie); err == nil {
		return v
	}
	return ""
}

// AdminAuth rejects requests without a valid admin token with 401.
func AdminAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(AdminToken(c))
		if err != nil {
			utils.LogEvent(GetRequestID(c), "auth", "admin", "rejected: "+err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":    false,
				"error":      "Unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// IsAdmin reports whether the request carries a valid admin token, without aborting.
func IsAdmin(c *gin.Context, v TokenVerifier) bool {
	_, err := v.Verify(AdminToken(c))
	return err == nil
}

// AdminSubject returns the authenticated admin username, if any.
func AdminSubject(c *gin.Context) string {
	if v, ok := c.Get(adminClaimsKey); ok {
		if claims, ok := v.(services.AdminClaims); ok {
			return claims.Subject
		}
	}
	return ""
}
