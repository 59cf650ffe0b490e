package web

// handlers_auth.go serves registration and login. A duplicate email on
// signup gets its own message; a failed login never reveals whether
// the email or the password was wrong.

import (
	"errors"
	"net/http"

	"github.com/jkeller/lifetable/internal/auth"
	"github.com/jkeller/lifetable/internal/core"
	"github.com/jkeller/lifetable/internal/web/fragments"
)

// handleRegister creates a new user account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	name, err := formValue(r, "name")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	email, err := formValue(r, "email")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	password, err := formValue(r, "password")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	err = s.users.Signup(r.Context(), name, email, password)
	if errors.Is(err, auth.ErrEmailTaken) {
		s.respondError(w, r, &core.ConflictError{
			Message: "This email address is already registered",
			Action:  "Log in instead, or use a different address",
		})
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	renderFragment(w, r, fragments.SignupSuccess(email))
}

// handleLogin verifies credentials and redirects the browser to the
// dashboard via HX-Redirect on success.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email, err := formValue(r, "email")
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	password, err := formValue(r, "password")
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if _, err := s.users.Login(r.Context(), email, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			fragments.Status(fragments.StatusError, "Invalid email or password.").Render(r.Context(), w)
			return
		}
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("HX-Redirect", "/dashboard")
	renderFragment(w, r, fragments.Status(fragments.StatusSuccess, "Login successful."))
}

// handleDashboard renders the logged-in landing fragment.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	renderFragment(w, r, fragments.Dashboard())
}
