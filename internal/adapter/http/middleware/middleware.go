package middleware

import (
	"workshop_xpto/internal/auth"
	"workshop_xpto/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderAdminKey  = "X-Admin-Key"
	HeaderRequestID = "X-Request-ID"
)

// AdminPrincipal attaches the request principal to the request context.
// A wrong or missing key is not rejected here: the request proceeds as an
// operator and admin-only operations refuse it.
func AdminPrincipal(adminKey string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		presented := c.GetHeader(HeaderAdminKey)
		p := auth.Resolve(presented, adminKey)
		if presented != "" && !p.IsAdmin() {
			log.Debugf("[auth][middleware] admin key rejected path=%s", c.FullPath())
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

func RequestID(c *gin.Context) {
	requestID := c.GetHeader(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Set("request_id", requestID)
	c.Header(HeaderRequestID, requestID)
	c.Next()
}
