package response

import (
	"errors"
	"net/http"

	"tripbook/internal/shared/apperrors"
	"tripbook/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RespondJSON writes a message together with a single named payload.
func RespondJSON(c *gin.Context, code int, message string, key string, data interface{}) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = data
	}
	c.JSON(code, body)
}

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

// Error maps a service error to its HTTP status. Render and validation
// details are surfaced verbatim; store and unknown failures are not.
func Error(c *gin.Context, err error) {
	code, message := StatusFor(err)
	if code >= http.StatusInternalServerError {
		logger.GetDefault().LogHTTPError(c, err, code)
	}
	c.JSON(code, ErrorResponse{Message: message})
}

// StatusFor returns the HTTP status and client-facing message for err.
func StatusFor(err error) (int, string) {
	var (
		validationErr apperrors.ValidationError
		notFoundErr   apperrors.NotFoundError
		renderErr     apperrors.RenderError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError, renderErr.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
