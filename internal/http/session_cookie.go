package http

import (
	"log/slog"
	"net/http"

	"trackpense/internal/core"
	applog "trackpense/internal/log"
)

const sessionCookieName = "trackpense_session"

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// currentUser resolves the request's session cookie to a user record. Any
// failure along the way (no cookie, bad token, vanished user) reads as
// "not logged in"; store faults are logged but treated the same.
func (s *Server) currentUser(r *http.Request) (core.User, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return core.User{}, false
	}
	email, err := s.sessions.Verify(c.Value)
	if err != nil {
		return core.User{}, false
	}
	u, ok, err := s.auth.UserByEmail(r.Context(), email)
	if err != nil {
		slog.ErrorContext(r.Context(), "Session user lookup failed", applog.FieldError, err)
		return core.User{}, false
	}
	if !ok {
		return core.User{}, false
	}
	return u, true
}
