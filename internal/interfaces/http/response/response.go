package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "reward-ops.backend/internal/domain/errors"
	"reward-ops.backend/pkg/logger"
	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps an error to the response envelope. Typed AppErrors pass
// through with their machine code; anything else is logged and masked
// as a generic failure.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error(c.Request.Context(), "unhandled error", zap.Error(err))
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
