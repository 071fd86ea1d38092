package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the only envelope this API uses; successful endpoints
// return their documented payloads directly.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error writes the public error body. The request id travels in the
// X-Request-ID header set by middleware, never in the body.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}
