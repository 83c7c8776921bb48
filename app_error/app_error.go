package app_error

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// New attaches an HTTP status to err. The status survives further wrapping.
func New(err error, status int) error {
	return statusError{error: err, status: status}
}

// Status returns the HTTP status carried by err, or 500.
func Status(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, Status(err))
}
