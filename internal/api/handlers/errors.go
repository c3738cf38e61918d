package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/internal/validation"
	"github.com/opstrack/forms-go/pkg/response"
)

// writeServiceError maps service errors onto HTTP statuses. Validation
// failures carry the whole field error map so clients can render every
// problem at once; persistence failures stay generic.
func writeServiceError(c *gin.Context, err error) {
	var fieldErrs *validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, response.ValidationErrorResponse{
			Error:  "validation failed",
			Errors: fieldErrs.Fields,
		})
	case errors.Is(err, application.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrFormNotActive),
		errors.Is(err, application.ErrInvalidTransition),
		errors.Is(err, application.ErrDuplicateCode),
		errors.Is(err, application.ErrDuplicateFieldCode):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidFieldType),
		errors.Is(err, application.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrPersistence):
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
