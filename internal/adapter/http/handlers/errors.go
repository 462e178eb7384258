package handlers

import (
	"errors"
	"net/http"
	"strings"

	"repair_hub/internal/usecase"
	"repair_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errMissingSession = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// mapError classifies use case errors into the HTTP envelope. Validation
// messages are passed through since they name the offending field.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), usecase.ErrValidation.Error()+": ")
		return pkg.NewDomainError("INVALID_REQUEST", msg, err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRepairJobNotFound):
		return pkg.NewDomainErrorSimple("REPAIR_JOB_NOT_FOUND", "Repair job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTagNotFound):
		return pkg.NewDomainErrorSimple("TAG_NOT_FOUND", "Job tag not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for this quantity", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid shop id or secret", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Session is missing or expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNoTagDetected):
		return pkg.NewDomainErrorSimple("NO_TAG_DETECTED", "No job tag found in the provided frames", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCameraUnavailable):
		return pkg.NewDomainError("CAMERA_UNAVAILABLE", "Frame source could not be opened", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBackend):
		return pkg.NewDomainError("BACKEND_ERROR", "Backend request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
