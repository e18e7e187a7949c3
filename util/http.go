package util

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/usda-mcp/nutrition-api/fdc"
	"github.com/usda-mcp/nutrition-api/types"
)

// ResponseCodeFromError resolves a status code from the error taxonomy
func ResponseCodeFromError(err error) int {
	var invalidInput *fdc.InvalidInputError
	var notConfigured *fdc.NotConfiguredError
	var upstream *fdc.UpstreamError
	var emptyResult *fdc.EmptyResultError

	switch {
	case errors.As(err, &invalidInput):
		return http.StatusBadRequest
	case errors.As(err, &notConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	case errors.As(err, &emptyResult):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error creates a standardized failure envelope response,
// with the status code derived from the error type
func Error(w http.ResponseWriter, tool string, originalError error) {
	ErrorWithCode(w, tool, originalError, ResponseCodeFromError(originalError))
}

// ErrorWithCode creates a standardized failure envelope response
// with an explicit status code
func ErrorWithCode(w http.ResponseWriter, tool string, originalError error, statusCode int) {
	WriteJSON(w, types.NewFailure(tool, originalError), statusCode)
}

// WriteJSON marshals the body and writes it with the given status code
func WriteJSON(w http.ResponseWriter, body interface{}, statusCode int) {
	jsonResponse, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonResponse)
}
