package utils

import "github.com/gin-gonic/gin"

// MessageResponse is the body shape every error and status reply uses.
type MessageResponse struct {
	Message string `json:"message"`
}

// Message writes a `{"message": ...}` JSON body with the given status code.
// The wire contract fixes this shape for all non-payload responses.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, MessageResponse{Message: message})
}
