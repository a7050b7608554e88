package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error payload: a single human readable detail.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Detail writes an error response with the given status and message.
func Detail(ctx *gin.Context, status int, detail string) {
	ctx.JSON(status, ErrorBody{Detail: detail})
}

// Message writes a confirmation payload. Used by deletes, which answer 204
// with a body; most clients discard it but the contract keeps it.
func Message(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, gin.H{"message": msg})
}
