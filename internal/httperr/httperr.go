package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a business error to its HTTP status. Unknown errors
// become a 500 without leaking internals.
func WriteBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	status := http.StatusInternalServerError
	switch be.Kind {
	case KindBadRequest:
		status = http.StatusBadRequest
	case KindNotFound:
		status = http.StatusNotFound
	case KindNotAllowed:
		status = http.StatusForbidden
	case KindNoAvailability:
		status = http.StatusConflict
	case KindAlreadyCanceled:
		status = http.StatusConflict
	case KindCannotCancel:
		status = http.StatusUnprocessableEntity
	}

	Write(c, status, be.Code, be.Message)
}
