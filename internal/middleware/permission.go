package middleware

import (
	"github.com/gin-gonic/gin"

	"armory/internal/authz"
	apperrors "armory/internal/errors"
	"armory/internal/logger"
	"armory/internal/models"
)

// RequirePermission lets the request through only when the authenticated
// role holds perm. It must run after AuthMiddleware.
func RequirePermission(perm authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextRole)
		if !exists {
			abortWithAppError(c, apperrors.ErrUnauthorized)
			return
		}
		role, ok := raw.(models.Role)
		if !ok {
			abortWithAppError(c, apperrors.ErrUnauthorized)
			return
		}

		if !authz.Allowed(role, perm) {
			logger.Get().Infow("permission denied",
				"role", role,
				"permission", perm,
				"path", c.Request.URL.Path,
			)
			abortWithAppError(c, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}
