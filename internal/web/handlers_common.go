package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/jkeller/lifetable/internal/core"
	"github.com/jkeller/lifetable/internal/logging"
)

// renderFragment writes an HTML fragment response.
func renderFragment(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render fragment", "error", err)
	}
}

// writeJSON encodes v as JSON and writes it to w. Encoding errors are
// logged; headers are already sent at that point.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode", "error", err)
	}
}

// queryParam returns a trimmed query parameter, failing with a
// ValidationError when it is blank.
func queryParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", &core.ValidationError{Field: name, Message: name + " is required"}
	}
	return v, nil
}

// intQueryParam returns a required integer query parameter.
func intQueryParam(r *http.Request, name string) (int, error) {
	v, err := queryParam(r, name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &core.ValidationError{Field: name, Message: name + " must be an integer"}
	}
	return i, nil
}

// formValue returns a trimmed form field, failing with a
// ValidationError when it is blank.
func formValue(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return "", &core.ValidationError{Field: name, Message: name + " is required"}
	}
	return v, nil
}

// intFormValue returns a required integer form field.
func intFormValue(r *http.Request, name string) (int, error) {
	v, err := formValue(r, name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &core.ValidationError{Field: name, Message: name + " must be an integer"}
	}
	return i, nil
}

// floatFormValue returns a required numeric form field.
func floatFormValue(r *http.Request, name string) (float64, error) {
	v, err := formValue(r, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &core.ValidationError{Field: name, Message: name + " must be a number"}
	}
	return f, nil
}
