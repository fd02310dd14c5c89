package resp

import (
	"encoding/json"
	"net/http"

	"github.com/jarredbaird/express-jobly/ecode"
)

// Exception represents the response structure.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
	Data    any    `json:"data,omitempty"`    // Response data
}

// Success handles success responses.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode handles success responses with custom status code.
// The payload is written as-is; a string payload becomes {"message": ...}.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	if statusCode < 200 || statusCode >= 400 {
		Fail(w, &Exception{Status: statusCode})
		return
	}

	var body any = map[string]any{"message": "ok"}
	if len(data) > 0 && data[0] != nil {
		if msg, ok := data[0].(string); ok {
			body = map[string]any{"message": msg}
		} else {
			body = data[0]
		}
	}
	writeJSON(w, statusCode, body)
}

// Fail handles failure responses.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = &Exception{
			Status:  http.StatusInternalServerError,
			Code:    ecode.ServerErr,
			Message: ecode.Text(ecode.ServerErr),
		}
	}
	statusCode, result := buildFailureResponse(r)
	writeJSON(w, statusCode, result)
}

// buildFailureResponse builds the failure response.
func buildFailureResponse(r *Exception) (int, *Exception) {
	status := http.StatusBadRequest
	code := ecode.RequestErr

	if r.Code != 0 {
		code = r.Code
	}
	if r.Status != 0 {
		status = r.Status
	} else if r.Code != 0 {
		status = ecode.ToHTTPStatus(r.Code)
	}

	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &Exception{
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// writeJSON writes res as JSON with the given status.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
