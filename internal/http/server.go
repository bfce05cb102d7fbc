// Package http serves the expense tracker's web UI: login and
// registration forms, the dashboard, and health endpoints.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"trackpense/internal/auth"
	applog "trackpense/internal/log"
	"trackpense/internal/middleware/ratelimit"
	"trackpense/internal/middleware/security"
	"trackpense/internal/middleware/trace"
	"trackpense/internal/services"
	appweb "trackpense/web"
)

// Pinger reports record store reachability for the readiness check.
// *storage.Repository implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	http.Server
	templates *template.Template

	auth     *auth.Service
	sessions *auth.SessionManager
	expenses *services.ExpenseService
	store    Pinger

	limiter      *ratelimit.Limiter
	shutdownOnce sync.Once
}

// NewServer configures routes, middleware and templates, returning a
// ready-to-run server.
func NewServer(addr string, authSvc *auth.Service, sessions *auth.SessionManager, expenses *services.ExpenseService, store Pinger) (*Server, error) {
	mux := http.NewServeMux()

	s := &Server{
		auth:     authSvc,
		sessions: sessions,
		expenses: expenses,
		store:    store,
		limiter:  ratelimit.NewLimiter(ratelimit.DefaultConfig()),
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		slog.Warn("Failed to mount embedded static FS", applog.FieldError, err)
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/dashboard", s.handleDashboard)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	traced := trace.NewMiddleware(trace.ClientIP)

	s.Server = http.Server{
		Addr:    addr,
		Handler: traced.Middleware(headers.Middleware(s.limitMutations(mux))),
	}
	return s, nil
}

// limitMutations applies the rate limiter to form submissions only; page
// reads stay unthrottled.
func (s *Server) limitMutations(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			clientIP := trace.ClientIP(r)
			if !s.limiter.Allow(clientIP) {
				slog.WarnContext(r.Context(), "Rate limit exceeded",
					applog.FieldClientIP, clientIP, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
				w.Header().Set("Retry-After", "60")
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// Shutdown gracefully shuts down the server and its cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "template", name, applog.FieldError, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
