package api

import (
	"errors"
	"net/http"

	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id assigned to each request.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns a request id when the client did not send one and
// echoes it on the response, so log lines and responses can be matched.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// abortWithError writes a plain-text error body and aborts the request.
// Errors on this API are text, not JSON, so a missing field reads the
// same in a browser as in curl.
func abortWithError(c *gin.Context, code int, message string) {
	c.String(code, message)
	c.Abort()
}

// abortWithServiceError maps service-layer failures onto status codes.
// Unknown errors collapse to a generic 500; store internals are never
// exposed to the client.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
