package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"lunadocs/internal/config"
	"lunadocs/internal/logger"
	"lunadocs/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks the single admin account and issues session tokens.
type AuthService struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	s := &AuthService{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		secret:       []byte(cfg.SessionSecret),
		ttl:          cfg.SessionDuration(),
		now:          time.Now,
	}

	if s.passwordHash == "" && cfg.AdminPassword != "" {
		hash, err := utils.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
		s.passwordHash = hash
	}
	if len(s.secret) == 0 {
		// sessions will not survive a restart
		s.secret = []byte(uuid.NewString() + uuid.NewString())
		logger.Log.Warn("SESSION_SECRET is empty, using an ephemeral key")
	}
	return s, nil
}

// Enabled reports whether admin credentials are configured at all.
func (s *AuthService) Enabled() bool {
	return s.username != "" && s.passwordHash != ""
}

func (s *AuthService) TTL() time.Duration { return s.ttl }

// Login returns a signed session token and its expiry.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	log := logger.WithCtx(ctx)
	if !s.Enabled() {
		log.Warn("login rejected: admin credentials are not configured")
		return "", time.Time{}, ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := utils.CheckPasswordHash(password, s.passwordHash)
	if !userOK || !passOK {
		log.Warn("login rejected", zap.String("username", username))
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, claims, err := utils.GenerateToken(s.secret, s.username, s.ttl, s.now())
	if err != nil {
		log.Error("sign session token", zap.Error(err))
		return "", time.Time{}, err
	}
	log.Info("admin logged in", zap.String("username", username), zap.String("jti", claims.ID))
	return token, claims.ExpiresAt.Time, nil
}

// Verify returns the admin name carried by a valid session token.
func (s *AuthService) Verify(token string) (string, error) {
	claims, err := utils.ParseToken(s.secret, token, s.now())
	if err != nil {
		return "", err
	}
	if claims.Subject != s.username {
		return "", utils.ErrInvalidToken
	}
	return claims.Subject, nil
}

// SessionCookie names the cookie that carries the admin session token.
const SessionCookie = "admin_session"
