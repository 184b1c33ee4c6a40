// Package httperr maps internal failure kinds to HTTP status codes through a
// single table, so client-caused failures (400/401/403) are never conflated
// with server-caused ones (500).
package httperr

import (
	"encoding/json"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota + 1
	Conflict
	Auth
	Forbidden
	Scoring
	Persistence
	Internal
)

var statusByKind = map[Kind]int{
	Validation:  http.StatusBadRequest,
	Conflict:    http.StatusBadRequest,
	Auth:        http.StatusUnauthorized,
	Forbidden:   http.StatusForbidden,
	Scoring:     http.StatusBadRequest,
	Persistence: http.StatusInternalServerError,
	Internal:    http.StatusInternalServerError,
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Status returns the HTTP status for an error. Anything that is not an
// *Error is an unexpected internal failure.
func Status(err error) int {
	if e, ok := err.(*Error); ok {
		if status, ok := statusByKind[e.Kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// Write sends the error as JSON. Internal error details are not leaked to
// the client; the Message field is what callers see.
func Write(w http.ResponseWriter, err error) {
	message := "internal server error"
	if e, ok := err.(*Error); ok {
		message = e.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(err))
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
