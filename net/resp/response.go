package resp

import (
	"encoding/json"
	"net/http"

	"github.com/monigate/monigate/ecode"
	"github.com/monigate/monigate/query"
)

// Envelope is the uniform response body. List endpoints carry pagination
// metadata next to the data; failures carry a business code and message.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *query.Meta `json:"pagination,omitempty"`
	Code       int         `json:"code,omitempty"`
	Message    string      `json:"message,omitempty"`
	Errors     any         `json:"errors,omitempty"`
}

// Exception describes a failure response before it is written.
type Exception struct {
	Status  int    `json:"status,omitempty"`  // HTTP status
	Code    int    `json:"code,omitempty"`    // Business code
	Message string `json:"message,omitempty"` // Message
	Errors  any    `json:"errors,omitempty"`  // Validation errors
}

// Success writes a 200 envelope around data.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes a success envelope with a custom status code.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	env := &Envelope{Success: true}
	if len(data) > 0 {
		env.Data = data[0]
	}
	writeJSON(w, statusCode, env)
}

// List writes a paginated success envelope: {success, data, pagination}.
func List(w http.ResponseWriter, data any, meta query.Meta) {
	writeJSON(w, http.StatusOK, &Envelope{
		Success:    true,
		Data:       data,
		Pagination: &meta,
	})
}

// Fail writes a failure envelope. A nil exception maps to a server error.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer("")
	}
	status := r.Status
	if status == 0 {
		status = http.StatusBadRequest
	}
	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}
	writeJSON(w, status, &Envelope{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	})
}

// BadRequest builds a 400 exception.
func BadRequest(message string, errors ...any) *Exception {
	return newException(http.StatusBadRequest, ecode.RequestErr, message, errors...)
}

// NotFound builds a 404 exception.
func NotFound(message string, errors ...any) *Exception {
	return newException(http.StatusNotFound, ecode.NotFound, message, errors...)
}

// InternalServer builds a 500 exception.
func InternalServer(message string, errors ...any) *Exception {
	return newException(http.StatusInternalServerError, ecode.ServerErr, message, errors...)
}

// BadGateway builds a 502 exception for upstream failures.
func BadGateway(message string, errors ...any) *Exception {
	return newException(http.StatusBadGateway, ecode.UpstreamErr, message, errors...)
}

func newException(status, code int, message string, errors ...any) *Exception {
	e := &Exception{Status: status, Code: code, Message: message}
	if len(errors) > 0 {
		e.Errors = errors[0]
	}
	return e
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
