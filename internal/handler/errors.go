package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// respondServiceError maps the error taxonomy onto HTTP responses:
// validation 400, conflict 409, not found 404, dependency 503, anything
// else 500 with full detail logged server-side.
func respondServiceError(c *gin.Context, log *logger.Logger, err error, fallback string) {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Fields != nil {
			utils.ValidationErrorResponse(c, vErr.Message, vErr.Fields)
		} else {
			utils.BadRequestResponse(c, vErr.Message, nil)
		}
		return
	}

	var cErr *apperrors.ConflictError
	if errors.As(err, &cErr) {
		var data interface{}
		if cErr.BillCount > 0 {
			data = gin.H{"hasBills": true, "billCount": cErr.BillCount}
		}
		utils.ConflictResponse(c, cErr.Message, data)
		return
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		utils.NotFoundResponse(c, fallback+" not found")
		return
	}

	var dErr *apperrors.DependencyError
	if errors.As(err, &dErr) {
		log.WithError(err).Error("Dependency failure")
		utils.ServiceUnavailableResponse(c, dErr.Message)
		return
	}

	log.WithError(err).Error("Unhandled service error")
	utils.InternalServerErrorResponse(c, "Failed to process "+fallback, err)
}
