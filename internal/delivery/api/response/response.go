package response

import (
	"net/http"

	deliverycontext "agrimatch/internal/delivery/context"
	domainerrors "agrimatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the JSON body of every API response. Exactly one of Data and
// Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  MetaInfo   `json:"meta"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request ID so clients can quote it in reports.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// hidesDetails reports whether details must be withheld for the status.
func hidesDetails(status int) bool {
	switch {
	case status >= http.StatusInternalServerError:
		return true
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return true
	default:
		return false
	}
}

// Success writes data under the "data" key.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for server and auth failures.
func Error(c echo.Context, status int, code, message string, details any) error {
	if hidesDetails(status) {
		details = nil
	}

	return c.JSON(status, Envelope{
		Error: &ErrorInfo{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BindingError(c echo.Context, code, message string) error {
	return Error(c, http.StatusBadRequest, code, message, nil)
}

func Unauthorized(c echo.Context, code, message string) error {
	return Error(c, http.StatusUnauthorized, code, message, nil)
}

func Forbidden(c echo.Context, code, message string) error {
	return Error(c, http.StatusForbidden, code, message, nil)
}

func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError renders client errors directly. Anything else, including
// 5xx AppErrors, goes back to the central error handler to be logged.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
