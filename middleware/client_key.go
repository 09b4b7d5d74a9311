package middleware

import (
	"github.com/gin-gonic/gin"
)

// ClientKeyHeader lets clients carry an explicit conversation key.
// Mobile clients behind NAT share an IP, so the header wins when set.
const ClientKeyHeader = "X-Client-Key"

// ContextClientKey is the gin context key the handlers read.
const ContextClientKey = "clientKey"

// ClientKey derives the per-client session key: the X-Client-Key
// header when present, otherwise the client network address.
func ClientKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(ClientKeyHeader)
		if key == "" {
			key = c.ClientIP()
		}
		c.Set(ContextClientKey, key)
		c.Next()
	}
}
