package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps how much of the request body downstream handlers can
// read. Reads past the cap fail inside binding, so oversized payloads
// surface on the malformed-body path instead of being buffered whole.
func MaxBodyBytes(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)

		ctx.Next()
	}
}
