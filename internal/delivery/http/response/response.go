package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Kind discriminates error
// classes (spam vs validation share a 422 status), Errors carries the
// per-field validation messages.
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, kind, message string, errors map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Kind:      kind,
		Errors:    errors,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
