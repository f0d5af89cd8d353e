package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every API endpoint replies with. Data is
// always present so clients can branch on it without probing for keys.
type Response struct {
	Data  interface{} `json:"data"`
	Error string      `json:"error,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, Response{Data: data})
}

// Error sends an error response. Data is false so the envelope keeps its
// shape for clients that only inspect the data field.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Data:  false,
		Error: message,
	})
}
