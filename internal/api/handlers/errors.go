package handlers

import (
	"errors"
	"net/http"

	"pricing-simulator/internal/api/models"
	"pricing-simulator/internal/pricing"

	"github.com/gin-gonic/gin"
)

// respondError maps core errors to HTTP status codes:
// validation failures are 400, precondition (state) failures 409,
// unknown sessions 404, anything else 500.
func respondError(c *gin.Context, err error) {
	var vErr *pricing.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "VALIDATION_ERROR",
				Message: vErr.Error(),
				Details: map[string]interface{}{"missing_fields": vErr.Fields},
			},
		})
		return
	}

	var sErr *pricing.StateError
	if errors.As(err, &sErr) {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STATE_ERROR",
				Message: sErr.Error(),
			},
		})
		return
	}

	var nfErr *SessionNotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SESSION_NOT_FOUND",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
