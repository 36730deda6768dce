package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/go-petr/super-app/internal/metrics"
)

// Metrics records in-flight requests, request counts and latency per route.
func Metrics() gin.HandlerFunc {
	return func(gctx *gin.Context) {
		done := metrics.RequestStarted()

		gctx.Next()

		path := gctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		done(gctx.Request.Method, path, gctx.Writer.Status())
	}
}
