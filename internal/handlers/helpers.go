package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "sitedesk/internal/errors"
	"sitedesk/internal/logger"
	"sitedesk/internal/middleware"
	"sitedesk/internal/services"
)

// ErrorResponse documents the JSON error envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// actorRole extracts the acting role set by the ActorRole middleware.
// Absent middleware (direct handler tests) defaults to requester.
func actorRole(c *gin.Context) services.Role {
	if v, exists := c.Get(middleware.ActorRoleKey); exists {
		if role, ok := v.(services.Role); ok {
			return role
		}
	}
	return services.RoleRequester
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
