package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint writes. Error is either a
// plain message or a field->message map for validation failures.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    T      `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func Success[T any](c *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, APIResponse[T]{Success: true, Message: message, Data: data})
}

// List writes a successful listing with its row count alongside the data.
func List[T any](c *gin.Context, data []T, count int) {
	c.JSON(http.StatusOK, APIResponse[[]T]{Success: true, Count: &count, Data: data})
}

func Error(c *gin.Context, status int, err any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, APIResponse[any]{Success: false, Error: err})
}

// AbortError writes the error envelope and stops the handler chain.
func AbortError(c *gin.Context, status int, err any) {
	c.AbortWithStatusJSON(status, APIResponse[any]{Success: false, Error: err})
}
