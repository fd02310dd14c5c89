package resp

import (
	"net/http"

	"github.com/jarredbaird/express-jobly/ecode"
)

// BadRequest returns a 400 exception, optionally carrying field errors.
func BadRequest(message string, errors ...any) *Exception {
	e := &Exception{
		Status:  http.StatusBadRequest,
		Code:    ecode.ParamErr,
		Message: message,
	}
	if len(errors) > 0 {
		e.Errors = errors[0]
	}
	return e
}

// UnAuthorized returns a 401 exception.
func UnAuthorized(message string) *Exception {
	return &Exception{
		Status:  http.StatusUnauthorized,
		Code:    ecode.NoLogin,
		Message: message,
	}
}

// NotFound returns a 404 exception.
func NotFound(message string) *Exception {
	return &Exception{
		Status:  http.StatusNotFound,
		Code:    ecode.NotFound,
		Message: message,
	}
}

// InternalServer returns a 500 exception.
func InternalServer(message string) *Exception {
	return &Exception{
		Status:  http.StatusInternalServerError,
		Code:    ecode.ServerErr,
		Message: message,
	}
}

// ServiceUnavailable returns a 503 exception.
func ServiceUnavailable(message string) *Exception {
	return &Exception{
		Status:  http.StatusServiceUnavailable,
		Code:    ecode.ServiceUnavailable,
		Message: message,
	}
}

// FromError converts err into an exception using the code it carries.
// Errors without a code become an opaque 500 so internals never leak.
func FromError(err error) *Exception {
	code := ecode.CodeOf(err)
	status := ecode.ToHTTPStatus(code)
	if status == http.StatusInternalServerError {
		return InternalServer(ecode.Text(ecode.ServerErr))
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: ecode.MessageOf(err),
	}
}
