package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultAllowMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORS lets a single browser origin call the API with credentials. Any method
// and any header is allowed for that origin; other origins get no CORS headers
// and their preflight requests are rejected.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		preflight := c.Request.Method == http.MethodOptions &&
			c.GetHeader("Access-Control-Request-Method") != ""

		if origin != allowedOrigin {
			if preflight {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Disallowed CORS origin"})
				return
			}
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")

		if preflight {
			c.Header("Access-Control-Allow-Methods", defaultAllowMethods)
			// With credentials a wildcard is not honoured, so echo what was asked for.
			if headers := c.GetHeader("Access-Control-Request-Headers"); headers != "" {
				c.Header("Access-Control-Allow-Headers", headers)
			}
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
