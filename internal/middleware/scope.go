package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/priyanka7rc/laya/internal/model"
	"github.com/priyanka7rc/laya/pkg/response"
)

// scopeKey is the gin context key holding the request scope.
const scopeKey = "laya.scope"

// userIDHeader carries the authenticated user id. Session validation happens
// upstream (reverse proxy / auth gateway); this service trusts the header.
const userIDHeader = "X-User-ID"

// Scope extracts the user identity from the request and aborts with 401 when
// it is missing. Every scoped route must sit behind this middleware.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Scope(). The bool is false when
// the middleware did not run for this request.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
