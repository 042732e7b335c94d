package handlers

import (
	"errors"
	"flight-sun-service/internal/platform/apperrors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError carries the status and code rendered by the error middleware.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// AsHTTPError converts any error into an HTTPError. Errors that are not
// already HTTPErrors become opaque 500s.
func AsHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    apperrors.CodeInternal,
		Message: "something went wrong",
		Err:     err,
	}
}

// fromAppError maps application error codes to HTTP statuses. notFound is
// the status used for airport_not_found.
func fromAppError(err error, notFound int) *HTTPError {
	switch code := apperrors.Code(err); code {
	case apperrors.CodeInvalidInput:
		return NewHTTPError(http.StatusBadRequest, code, errMessage(err), err)
	case apperrors.CodeAirportNotFound:
		return NewHTTPError(notFound, code, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeInternal, "something went wrong", err)
	}
}

// errMessage returns the message of the first AppError in the chain so
// internal wrapping prefixes do not leak to clients.
func errMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
