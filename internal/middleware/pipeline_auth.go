package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "armory/internal/errors"
)

// PipelineAuthMiddleware guards machine-to-machine endpoints such as the
// scheduled inventory snapshot with a shared X-API-Key. An empty configured
// key disables the endpoints entirely.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithAppError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithAppError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
