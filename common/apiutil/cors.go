package apiutil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EchoRequestedHeaders answers CORS preflights by allowing exactly the
// headers the browser asked for. A literal "*" is not a wildcard once
// credentials are allowed, so it must run ahead of the CORS middleware,
// which leaves Access-Control-Allow-Headers alone when it has no list.
func EchoRequestedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions &&
			c.GetHeader("Origin") != "" &&
			c.GetHeader("Access-Control-Request-Method") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}
