package handlers

import (
	"errors"
	"net/http"

	apperrors "timesheet-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError maps service errors onto HTTP status codes. Anything the
// taxonomy does not know becomes a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		notFound   *apperrors.NotFoundError
		exists     *apperrors.AlreadyExistsError
		validation *apperrors.ValidationError
		conflict   *apperrors.ConflictError
		authn      *apperrors.AuthenticationError
		authz      *apperrors.AuthorizationError
		fieldErrs  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &authn):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &authz):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &exists), errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": c.GetString("request_id"),
		})
	}
}
