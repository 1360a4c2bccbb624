package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "github.com/salesdesk/quote-service/internal/app/context"
)

// RequestScope returns middleware that attaches a request-scoped
// RequestContext to the request, enabling per-request memoization in
// the application layer (e.g. repeated SKU lookups within one quote).
func RequestScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		rc := appctx.New(ctx)
		c.Request = c.Request.WithContext(appctx.WithContext(ctx, rc))
		c.Next()
	}
}
