package usecase

import (
	"context"
	"crypto/subtle"
	"sync"

	"bite-reviews/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the admin gate: one shared secret, explicit login/logout
// transitions, and opaque tokens held in process. The gate is advisory,
// not a hard security boundary, so sessions have no expiry and do not
// survive a restart.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	Logout(ctx context.Context, token string)
	Validate(token string) bool
}

type authService struct {
	config utils.AdminConfig
	log    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]struct{}
}

func NewAuthService(config utils.AdminConfig, log *zap.Logger) AuthService {
	return &authService{
		config:   config,
		log:      log.With(zap.String("service", "auth")),
		sessions: make(map[string]struct{}),
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if !s.checkPassword(password) {
		s.log.Warn("Admin login rejected")
		return "", ErrInvalidPassword
	}

	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = struct{}{}
	s.mu.Unlock()

	s.log.Info("Admin logged in")
	return token, nil
}

// Logout removes the session. An unknown token is a no-op: the flag is
// clear either way.
func (s *authService) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	s.log.Info("Admin logged out")
}

func (s *authService) Validate(token string) bool {
	s.mu.RLock()
	_, ok := s.sessions[token]
	s.mu.RUnlock()
	return ok
}

// checkPassword prefers the bcrypt hash when configured and falls back to
// a constant-time comparison against the plaintext value.
func (s *authService) checkPassword(password string) bool {
	if s.config.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(s.config.PasswordHash), []byte(password)) == nil
	}
	if s.config.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare(
		[]byte(s.config.Password), []byte(password)) == 1
}
