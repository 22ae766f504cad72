package middleware

import (
	"net/http"

	"lunadocs/internal/logger"
	"lunadocs/internal/reqctx"
	"lunadocs/internal/services"
	helpers "lunadocs/internal/utils/helpers"

	"go.uber.org/zap"
)

// SessionVerifier resolves a session token to the admin it belongs to.
type SessionVerifier interface {
	Verify(token string) (string, error)
}

func adminFromCookie(v SessionVerifier, r *http.Request) (string, error) {
	c, err := r.Cookie(services.SessionCookie)
	if err != nil {
		return "", err
	}
	return v.Verify(c.Value)
}

// AdminAPI rejects requests without a valid session with a 401 JSON body.
func AdminAPI(v SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			admin, err := adminFromCookie(v, r)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("admin api: no valid session", zap.String("path", r.URL.Path), zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(reqctx.WithAdmin(r.Context(), admin)))
		})
	}
}

// AdminPage sends visitors without a valid session to the login page.
func AdminPage(v SessionVerifier, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := adminFromCookie(v, r)
			if err != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(reqctx.WithAdmin(r.Context(), admin)))
		})
	}
}
