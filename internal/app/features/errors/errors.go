// internal/app/features/errors/errors.go
//
// Shared error rendering for API handlers. tilehub is consumed by the host
// course pages over JSON/CSS endpoints, so errors render as small JSON
// bodies rather than templated pages.
package errors

import (
	"encoding/json"
	"net/http"
)

// apiError is the JSON body for error responses.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func render(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiError{Error: code, Message: msg})
}

// RenderUnauthorized writes a 401 "sign in required" response.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusUnauthorized, "unauthorized", "Please sign in to continue.")
}

// RenderForbidden writes a 403 response with the given message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "You don't have permission to do this."
	}
	render(w, http.StatusForbidden, "forbidden", msg)
}

// RenderNotFound writes a 404 response.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Not found."
	}
	render(w, http.StatusNotFound, "not_found", msg)
}

// RenderBadRequest writes a 400 response with the given message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "Bad request."
	}
	render(w, http.StatusBadRequest, "bad_request", msg)
}

// RenderInternal writes a 500 response. The detail stays in the log, not
// the body.
func RenderInternal(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusInternalServerError, "internal", "Something went wrong.")
}
