package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error  string            `json:"error" example:"person 7 does not exist"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

// Created writes a 201 with a Location header pointing at the new resource.
func Created(w http.ResponseWriter, location string, v any) {
	w.Header().Set("Location", location)
	JSON(w, http.StatusCreated, v)
}

// NoContent writes an empty 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Page is the collection envelope returned by every list endpoint.
type Page[T any] struct {
	Data   []T `json:"data"`
	Total  int `json:"total"  example:"42"`
	Limit  int `json:"limit"  example:"50"`
	Offset int `json:"offset" example:"0"`
}

// NewPage builds a Page. A nil data slice is encoded as [].
func NewPage[T any](data []T, total, limit, offset int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Total: total, Limit: limit, Offset: offset}
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
