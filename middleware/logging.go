package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blogapi/utils"
)

// RequestLogger records method, path, status and latency for each request on
// the global zap logger.
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		utils.Sugar.Infow("http request",
			"method", ctx.Request.Method,
			"path", path,
			"status", ctx.Writer.Status(),
			"latency", time.Since(start).String(),
			"ip", ctx.ClientIP(),
		)
	}
}
