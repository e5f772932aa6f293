// Package resp provides standardized HTTP response helpers.
//
// Success bodies are plain JSON objects; operation results carry a
// "mensagem" field plus any data fields. Error bodies always have the
// shape {"erro": "<message>"} regardless of the failure class.
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ecomida/ecomida/ecode"
)

// Exception represents a failure response before serialization.
type Exception struct {
	Status  int    `json:"-"`    // HTTP status
	Code    int    `json:"-"`    // Business code
	Message string `json:"erro"` // Client-facing message
}

// newException creates a new failure response.
func newException(status, code int, message string) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Success writes a 200 response with the given payload.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes a success response with a custom status code.
// A string payload is wrapped as {"mensagem": ...}; nil payload becomes
// {"mensagem": "ok"}.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var payload any
	if len(data) > 0 {
		payload = data[0]
	}
	if s, ok := payload.(string); ok {
		payload = map[string]any{"mensagem": s}
	}
	if payload == nil {
		payload = map[string]any{"mensagem": "ok"}
	}
	writeJSON(w, statusCode, payload)
}

// Fail writes a failure response.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = newException(http.StatusInternalServerError, ecode.ServerErr, "")
	}
	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(r.Code)
	}
	writeJSON(w, status, r)
}

// writeJSON serializes res and writes it with the given status code.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
