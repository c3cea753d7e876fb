package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftmart/storefront/pkg/errors"
)

// respondError maps core errors onto HTTP status codes. Validation and
// guard rejections never reached the network; session lapses carry a
// redirect hint instead of an inline error, mirroring the storefront's
// login flow.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *errors.ErrCancellationNotAllowed:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrSessionExpired:
		c.JSON(http.StatusUnauthorized, gin.H{"error": e.Error(), "redirect": "/login"})
	case *errors.ErrRemote:
		logger.Error("Storefront API call failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": e.Error()})
	default:
		logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
