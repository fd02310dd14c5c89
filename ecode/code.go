package ecode

import "net/http"

// Business codes
const (
	OK = 0

	NoLogin      = -101 // missing or invalid credentials
	AccessDenied = -403 // authenticated but not allowed

	RequestErr = -400 // malformed request
	ParamErr   = -401 // invalid parameters
	NotFound   = -404 // resource not found
	Conflict   = -409 // resource conflict

	ServerErr          = -500
	ServiceUnavailable = -503
)

var messages = map[int]string{
	OK:                 "OK",
	NoLogin:            "Unauthorized",
	AccessDenied:       "Access denied",
	RequestErr:         "Invalid request",
	ParamErr:           "Invalid parameters",
	NotFound:           "Resource not found",
	Conflict:           "Resource conflict",
	ServerErr:          "Internal server error",
	ServiceUnavailable: "Service unavailable",
}

// Text returns the default message for a code
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to its HTTP status.
//
// Unauthenticated and unauthorized callers both map to 401.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case NoLogin, AccessDenied:
		return http.StatusUnauthorized
	case RequestErr, ParamErr, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
