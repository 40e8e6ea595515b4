package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"book-catalog/internal/shared/apperror"
)

// ErrorBody is the wire format for every failure response.
// Errors is only populated for validation failures.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Code: "BAD_REQUEST", Message: message})
}

// Error classifies err and writes the matching error body.
// Unclassified errors are logged with full detail server-side and reported
// to the client with the top-level message only.
func Error(c *gin.Context, err error) {
	var (
		notFound   *apperror.NotFoundError
		validation *apperror.ValidationError
		conflict   *apperror.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorBody{Code: "NOT_FOUND", Message: notFound.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, ErrorBody{
			Code:    "VALIDATION_ERROR",
			Message: "Validation Error",
			Errors:  validation.Fields,
		})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, ErrorBody{Code: "CONFLICT", Message: conflict.Error()})
	case errors.Is(err, apperror.ErrMalformedPayload):
		BadRequest(c, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("unclassified error")

		c.JSON(http.StatusInternalServerError, ErrorBody{Code: "INTERNAL_ERROR", Message: err.Error()})
	}
}
