package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/huskyden/backend/internal/app/models/dto"
	"github.com/huskyden/backend/internal/pkg/apperrors"
	"github.com/huskyden/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to a status code and the standard error envelope.
// Domain errors keep their own message; anything unrecognised becomes a logged 500.
func HandleAPIError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, dto.ErrorCodeInternalServer
	message := "Internal server error"

	var custom *apperrors.CustomError
	hasCustom := errors.As(err, &custom)

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		status, code, message = http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		status, code, message = http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"
	case errors.Is(err, apperrors.ErrValidationFailed):
		status, code, message = http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"
	default:
		hasCustom = false
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Unhandled API error")
	}

	detail := dto.NewErrorDetail(code, message)
	if hasCustom {
		detail.Message = custom.Error()
	}
	c.JSON(status, dto.ErrorResponse{Success: false, Error: detail, Timestamp: time.Now()})
}
