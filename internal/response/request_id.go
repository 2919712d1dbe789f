package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// maxInboundRequestIDLen caps client-supplied IDs so a hostile header
// cannot bloat logs or response metadata.
const maxInboundRequestIDLen = 64

// RequestIDMiddleware attaches a request ID to every request. An inbound
// X-Request-ID is honored when sane, so upstream proxies can correlate;
// otherwise a fresh UUID is generated. The ID is echoed in the response
// header and in the envelope metadata.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" || len(reqID) > maxInboundRequestIDLen {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}
