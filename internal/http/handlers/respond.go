package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondValidation reports every violated rule at once, one message per
// violation, mirroring the fail-all validation policy.
func RespondValidation(ctx *gin.Context, messages []string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": messages})
}

// RespondInternal hides the failure detail from the caller; the handler is
// expected to have logged it already.
func RespondInternal(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
