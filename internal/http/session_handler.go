package http

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"taskboard/internal/auth"
)

const sessionCookieName = "taskboard_session"

// sessionUserPayload is the JSON shape of the signed-in user reported to the
// client application.
type sessionUserPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// SessionHandler reports and terminates browser sessions.
type SessionHandler struct {
	authService  *auth.Service
	logger       *slog.Logger
	secureCookie bool
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(authService *auth.Service, env string, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		authService:  authService,
		logger:       logger,
		secureCookie: !strings.EqualFold(env, "development"),
	}
}

// Status handles GET /api/session. It reports whether the request holds a
// valid session and, if so, the resolved local user. The client's
// loading/authenticated/unauthenticated state machine keys off this.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	user, err := h.authService.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		h.logger.Error("session status: validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "unexpected error")
		return
	}

	if user == nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": sessionUserPayload{
			ID:        user.ID.String(),
			Email:     user.Email,
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
		},
	})
}

// Logout handles DELETE /api/session. It deletes the server-side session and
// clears the cookie; signing out without a session is a no-op.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.authService.DeleteSession(r.Context(), cookie.Value); err != nil {
			h.logger.Error("logout: session delete failed", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})

	w.WriteHeader(http.StatusNoContent)
}
