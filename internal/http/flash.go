package http

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "trackpense_flash"

// Flash is a one-shot status message carried across a redirect and
// consumed on the next page render.
type Flash struct {
	Message string
	Level   string // "success", "danger", "warning"
}

// setFlash attaches a flash message to the response. The value survives
// exactly one redirect: the next popFlash clears it.
func setFlash(w http.ResponseWriter, message, level string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(level + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the pending flash message, if any.
func popFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return Flash{}, false
	}

	// Consume regardless of whether the value decodes.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Flash{}, false
	}
	level, message, found := strings.Cut(string(raw), "|")
	if !found {
		return Flash{}, false
	}
	return Flash{Message: message, Level: level}, true
}
