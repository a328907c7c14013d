package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"storefront-api/internal/domain"
	authsvc "storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

type tokenVerifier interface {
	VerifyToken(token string) (*authsvc.Identity, error)
}

// authRequired rejects requests without a valid bearer token and
// attaches the decoded identity to the request context.
func authRequired(verifier tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondError(c, http.StatusUnauthorized, "access token required")
			return
		}
		ident, err := verifier.VerifyToken(token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// requirePermission gates a route on the static role grant table. It
// must be mounted after authRequired; a missing identity is a wiring
// bug, not a request-time failure.
func requirePermission(perm domain.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := identityFrom(c)
		if !domain.HasPermission(ident.Role, perm) {
			respondError(c, http.StatusForbidden, fmt.Sprintf("permission denied: %s is required", perm))
			return
		}
		c.Next()
	}
}

func identityFrom(c *gin.Context) *authsvc.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		panic("httpserver: identity accessed before authRequired ran")
	}
	return v.(*authsvc.Identity)
}
