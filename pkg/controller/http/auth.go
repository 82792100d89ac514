package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/secmon-lab/vaxbook/pkg/usecase"
)

// AuthHandler handles the JSON authentication endpoints
type AuthHandler struct {
	authUC       usecase.AuthUseCase
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC usecase.AuthUseCase, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUC:       authUC,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// HandleLogin authenticates with the backend and sets the session cookies
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(model.ErrInvalidInput, "invalid login request body"), http.StatusBadRequest)
		return
	}

	session, err := h.authUC.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		ctxlog.From(r.Context()).Info("Login failed", "username", req.Username, "error", err)
		writeError(w, r, err, statusOf(err, http.StatusBadGateway))
		return
	}

	setSessionCookies(w, session, h.secureCookie)
	writeJSON(w, r, http.StatusOK, loginResponse{
		Username:  session.Claims.Username,
		Role:      session.Claims.Role.String(),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// HandleLogout deletes the session and clears the cookies
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	endSession(w, r, h.authUC)
	writeJSON(w, r, http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// HandleUserMe returns current user information
func (h *AuthHandler) HandleUserMe(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := model.GetAuthContext(r.Context())
	if !ok {
		writeError(w, r, model.ErrUnauthorized, http.StatusUnauthorized)
		return
	}
	writeJSON(w, r, http.StatusOK, authCtx)
}

// endSession deletes the session named by the cookie, if any, and clears the
// session cookies
func endSession(w http.ResponseWriter, r *http.Request, authUC usecase.AuthUseCase) {
	if sessionIDCookie, err := r.Cookie(cookieSessionID); err == nil {
		if err := authUC.DeleteSession(r.Context(), sessionIDCookie.Value); err != nil {
			ctxlog.From(r.Context()).Debug("Failed to delete session", "error", err)
		}
	}
	clearSessionCookies(w)
}

func setSessionCookies(w http.ResponseWriter, session *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieSessionID,
		Value:    session.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     cookieSessionSecret,
		Value:    session.Secret.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{cookieSessionID, cookieSessionSecret} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
}
