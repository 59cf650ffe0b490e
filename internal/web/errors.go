package web

// errors.go provides unified error response handling for the web
// layer. Every failure is logged with full technical detail and the
// request ID, then rendered for the client as either an HTML fragment
// or a JSON body, never a raw stack trace.
//
// Status mapping follows the core taxonomy: ValidationError and
// ConflictError produce 400 before or without touching the store;
// everything else is a store-layer failure and produces 500 with a
// generic message.

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jkeller/lifetable/internal/core"
	"github.com/jkeller/lifetable/internal/logging"
	"github.com/jkeller/lifetable/internal/web/fragments"
)

// ErrorResponse is the JSON error body for API clients.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondError logs err and writes an appropriate response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := statusFor(err)
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	if wantsJSON(r) {
		respondErrorJSON(w, userMsg, statusCode)
		return
	}
	respondErrorFragment(w, r, userMsg, statusCode)
}

// statusFor maps the core error taxonomy to an HTTP status code.
func statusFor(err error) int {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ce *core.ConflictError
	if errors.As(err, &ce) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondErrorJSON writes a JSON error response.
func respondErrorJSON(w http.ResponseWriter, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  msg.Message,
		Action: msg.Action,
		Code:   msg.Code,
	})
}

// respondErrorFragment writes an HTML error fragment for the UI to
// swap in.
func respondErrorFragment(w http.ResponseWriter, r *http.Request, msg core.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	fragments.ErrorAlert(msg.Message, msg.Action, msg.Code).Render(r.Context(), w)
}

// wantsJSON checks if the client should receive JSON. The comparison
// endpoint is JSON; everything else under /api serves fragments.
func wantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/custom/") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
