package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// HandleServiceError renders an AppError with its own status; anything else
// becomes a generic 500 so internals never leak to the caller.
func HandleServiceError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSONError(c, appErr.Status, appErr.Message)
		return
	}
	JSONError(c, http.StatusInternalServerError, "internal server error")
}
