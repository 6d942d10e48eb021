package api

import (
	"encoding/json"
	"net/http"
)

// FieldError reports a validation failure on a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WriteError writes a JSON error body of the form {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteFieldError writes a 400 response carrying the failing field name.
func WriteFieldError(w http.ResponseWriter, e *FieldError) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{
		"error": e.Message,
		"field": e.Field,
	})
}
