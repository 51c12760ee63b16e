package utils

import "github.com/gin-gonic/gin"

// JSONResponse is the envelope every endpoint answers with, feed pages
// and errors alike. Code is the application result code, not the HTTP
// status; 0 means success.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Respond(ctx *gin.Context, status int, code int, message string, data interface{}) {
	ctx.JSON(status, JSONResponse{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// Success wraps data, typically a posts or comments page, in a 200
// envelope.
func Success(ctx *gin.Context, data interface{}) {
	Respond(ctx, 200, 0, "success", data)
}

// Error answers with an empty-data envelope. The message must be safe
// to show a client; storage detail stays in the log.
func Error(ctx *gin.Context, status int, code int, message string) {
	Respond(ctx, status, code, message, nil)
}
