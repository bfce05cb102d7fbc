package http

import (
	"errors"
	"log/slog"
	"net/http"

	"trackpense/internal/core"
	applog "trackpense/internal/log"
)

var (
	registerSchema = Schema{
		{Name: "name", Required: true},
		{Name: "email", Required: true},
		{Name: "password", Required: true},
	}
	loginSchema = Schema{
		{Name: "email", Required: true},
		{Name: "password", Required: true},
	}
)

// handleIndex shows the login form, or sends an authenticated user
// straight to the dashboard.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := s.currentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	flash, _ := popFlash(w, r)
	s.render(w, r, "index.html", struct{ Flash Flash }{Flash: flash})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		flash, _ := popFlash(w, r)
		s.render(w, r, "register.html", struct{ Flash Flash }{Flash: flash})
	case http.MethodPost:
		s.handleRegisterSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, r, "register.html", struct{ Flash Flash }{
			Flash: Flash{Message: "Invalid form submission", Level: "danger"},
		})
		return
	}

	values, err := registerSchema.Parse(r.PostForm)
	if err != nil {
		s.render(w, r, "register.html", struct{ Flash Flash }{
			Flash: Flash{Message: "Please fill in all required fields", Level: "danger"},
		})
		return
	}

	user, err := s.auth.Register(r.Context(),
		values.String("name"), values.String("email"), values.String("password"))
	if err != nil {
		msg := "Could not create the account"
		switch {
		case errors.Is(err, core.ErrMissingField):
			msg = "Please fill in all required fields"
		case errors.Is(err, core.ErrDuplicateUser):
			msg = "A user with this email already exists"
		default:
			slog.ErrorContext(r.Context(), "Registration failed", applog.FieldError, err)
		}
		s.render(w, r, "register.html", struct{ Flash Flash }{
			Flash: Flash{Message: msg, Level: "danger"},
		})
		return
	}

	// Log the new user in right away.
	token, err := s.sessions.Issue(user.Email)
	if err != nil {
		slog.ErrorContext(r.Context(), "Session issue failed", applog.FieldError, err, applog.FieldUserEmail, user.Email)
		setFlash(w, "Account created, please log in", "success")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid form submission", "danger")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	values, err := loginSchema.Parse(r.PostForm)
	if err != nil {
		setFlash(w, "Enter your email and password", "danger")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	user, err := s.auth.Login(r.Context(), values.String("email"), values.String("password"))
	if err != nil {
		switch {
		case errors.Is(err, core.ErrMissingField):
			setFlash(w, "Enter your email and password", "danger")
		case errors.Is(err, core.ErrInvalidCredentials):
			setFlash(w, "Wrong email or password", "danger")
		default:
			slog.ErrorContext(r.Context(), "Login failed", applog.FieldError, err)
			setFlash(w, "Login failed, please try again", "danger")
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	token, err := s.sessions.Issue(user.Email)
	if err != nil {
		slog.ErrorContext(r.Context(), "Session issue failed", applog.FieldError, err, applog.FieldUserEmail, user.Email)
		setFlash(w, "Login failed, please try again", "danger")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout clears the session binding. Logging out twice is harmless.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
