// Package apperr is the error taxonomy shared by every layer: validation,
// not-found, upstream (external model service) and storage failures.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Kind int

const (
	Validation Kind = iota + 1
	NotFound
	Upstream
	Storage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(k Kind, msg string) *Error { return &Error{Kind: k, Message: msg} }

func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

// KindOf returns the Kind carried by err, or 0 for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Gorm translates a gorm error into the taxonomy: record-not-found becomes
// NotFound("<what> not found"), anything else becomes Storage.
func Gorm(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Newf(NotFound, "%s not found", what)
	}
	return Wrap(Storage, what, err)
}

func httpStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Upstream:
		return http.StatusBadGateway
	case Storage:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// EchoHandler maps taxonomy errors onto {"error": message} JSON responses.
func EchoHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, echo.Map{"error": fmt.Sprint(he.Message)})
			return
		}
		status := httpStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
		}
		msg := err.Error()
		var e *Error
		if errors.As(err, &e) {
			msg = e.Message
		}
		_ = c.JSON(status, echo.Map{"error": msg})
	}
}
