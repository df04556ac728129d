package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "simorgh/internal/core/context"
)

// Admin marks requests of the admin surface so logs and the domain layer can tell
// editing traffic from public reads. It does not authenticate.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := appctx.WithAdmin(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Set("admin", true)
		c.Next()
	}
}
