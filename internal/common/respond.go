package common

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as the response body. Encoding failures are ignored;
// by that point the status line is already on the wire.
func RespondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// ValidationError reports a malformed request body. The assemblers never
// produce this themselves; it belongs to the handler boundary.
func ValidationError(w http.ResponseWriter, msg string) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status": "validation error",
		"error":  msg,
	})
}

// InternalError reports an unrecovered storage failure.
func InternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, map[string]string{
		"status": "error",
		"error":  "internal server error",
	})
}
