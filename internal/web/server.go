// Package web provides the HTTP server and handlers for the
// life-expectancy analytics API. Endpoints return HTML fragments for
// the browser UI; the comparison endpoint returns JSON.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jkeller/lifetable/internal/auth"
	"github.com/jkeller/lifetable/internal/config"
	"github.com/jkeller/lifetable/internal/core"
)

// Server is the HTTP server for the analytics API.
type Server struct {
	service *core.Service
	users   *auth.Service
	cfg     *config.Config
	router  *chi.Mux
	server  *http.Server
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, users *auth.Service, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		users:   users,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute, time.Minute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Form population fragments
		r.Get("/html/countries", s.handleCountryOptions)
		r.Get("/html/years", s.handleYearOptions)

		// Read views
		r.Get("/search/country_trend", s.handleCountryTrend)
		r.Get("/search/subregion_rank", s.handleSubregionRank)
		r.Get("/search/region_max_le", s.handleRegionMax)
		r.Get("/search/keyword", s.handleKeywordSearch)

		// Multi-country comparison (JSON)
		r.Get("/custom/multi_trend", s.handleMultiTrend)

		// Mutations
		r.Post("/edit/add_next_year", s.handleAddObservation)
		r.Post("/edit/update_record", s.handleUpdateObservation)
		r.Post("/edit/delete_range", s.handleDeleteRange)

		// Credentials
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
	})

	s.router.Get("/dashboard", s.handleDashboard)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				w.Header().Set("Content-Security-Policy",
					"default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'")
			}
			next.ServeHTTP(w, r)
		})
	}
}
