package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"lunadocs/internal/logger"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth   *services.AuthService
	secure bool
}

func NewAuthHandler(auth *services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secure: secureCookies}
}

type loginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

// Login
// @Summary      Admin login
// @Description  Checks the admin credentials and sets the admin_session cookie.
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Param        body body loginRequest true "Credentials"
// @Success      200 {object} map[string]bool
// @Failure      401 {object} helpers.Response
// @Router       /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("login: bad json", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, expires, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		helpers.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     services.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(h.auth.TTL() / time.Second),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	helpers.Raw(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout
// @Summary      Admin logout
// @Tags         admin-auth
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /api/admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     services.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	logger.WithCtx(r.Context()).Info("admin logged out")
	helpers.Raw(w, http.StatusOK, map[string]bool{"success": true})
}

// Session
// @Summary      Session check
// @Tags         admin-auth
// @Produce      json
// @Success      200 {object} map[string]bool "authenticated"
// @Failure      401 {object} map[string]bool "not authenticated"
// @Router       /api/admin/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(services.SessionCookie)
	if err != nil || c.Value == "" {
		helpers.Raw(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}
	if _, err := h.auth.Verify(c.Value); err != nil {
		helpers.Raw(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}
	helpers.Raw(w, http.StatusOK, map[string]bool{"authenticated": true})
}
