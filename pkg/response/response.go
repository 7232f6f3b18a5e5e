package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the error envelope. Success bodies are written bare.
type APIResponse struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
}

func Error(ctx *gin.Context, status int, message string, err interface{}) APIResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(ctx *gin.Context, status int, message string, err interface{}) {
	resp := Error(ctx, status, message, err)
	ctx.AbortWithStatusJSON(resp.Status, resp)
}
