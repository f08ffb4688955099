package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/core/domain"
)

// envelope is embedded by every response: {success, message?, ...payload}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

var succeeded = envelope{Success: true}

// StatusFor maps an error kind to the HTTP status used by the boundary.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindStore:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// failed builds the failure envelope for err. The cause stays in the logs.
func failed(err error) envelope {
	return envelope{Success: false, Message: domain.MessageOf(err)}
}

// listFailure renders a failed list read: the payload is still present, empty.
func listFailure(c echo.Context, err error, body any) error {
	return c.JSON(StatusFor(domain.KindOf(err)), body)
}
