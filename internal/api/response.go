package api

import (
	"encoding/json"
	"errors"
	"net/http"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, err error) {
	JSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}

// StatusFor maps a domain error to an HTTP status code.
func StatusFor(err error) int {
	var maxBytes *http.MaxBytesError

	switch {
	case jkerr.IsValidationError(err):
		return http.StatusBadRequest
	case jkerr.IsInvalidFileType(err):
		return http.StatusUnsupportedMediaType
	case jkerr.IsNoValidData(err):
		return http.StatusUnprocessableEntity
	case jkerr.IsNotFound(err):
		return http.StatusNotFound
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
