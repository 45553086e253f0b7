package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/api/shared/errors"
	"github.com/feral-file/rustaceans/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...).Wrap())
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message).Wrap())
}

// respondUnauthorized responds when the caller identity could not be established
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errors.NewUnauthorizedError(message).Wrap())
}

// respondInternalError responds with an internal server error and logs the cause
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...).Wrap())
}

// respondControllerError maps an issuance error to its status and reason code
func respondControllerError(c *gin.Context, err error, message string) {
	status, apiErr := errors.FromDomainError(err)
	if status == http.StatusInternalServerError {
		respondInternalError(c, err, message)
		return
	}
	c.JSON(status, apiErr.Wrap())
}
