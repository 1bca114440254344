package service

import (
	"net/http"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/domain"
	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

// dummyHash keeps unknown-client lookups as slow as real comparisons.
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z5Q0DHXGQ0Kq0o1F6DqVwW8y"

// AuthService issues API tokens to configured clients.
type AuthService struct {
	tokens  *auth.TokenManager
	clients map[string]string
}

// NewAuthService builds the service. It returns a disabled service when no JWT
// secret is configured.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	if !cfg.Enabled() {
		return &AuthService{}
	}
	return &AuthService{
		tokens:  auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		clients: cfg.Clients,
	}
}

// Enabled reports whether token auth is active.
func (s *AuthService) Enabled() bool {
	return s != nil && s.tokens != nil
}

// TokenManager exposes the token manager for middleware wiring; nil when disabled.
func (s *AuthService) TokenManager() *auth.TokenManager {
	if s == nil {
		return nil
	}
	return s.tokens
}

// IssueToken exchanges client credentials for a signed token.
func (s *AuthService) IssueToken(clientID, secret string) (*domain.Token, error) {
	if !s.Enabled() {
		return nil, apperrors.NewDomainError("AUTH_DISABLED", "authentication is not enabled", http.StatusNotFound, nil)
	}
	hash, ok := s.clients[clientID]
	if !ok {
		_ = auth.VerifySecret(dummyHash, secret)
		return nil, apperrors.NewUnauthorized("invalid client credentials")
	}
	if !auth.VerifySecret(hash, secret) {
		return nil, apperrors.NewUnauthorized("invalid client credentials")
	}
	token, exp, err := s.tokens.GenerateToken(clientID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &domain.Token{Value: token, ClientID: clientID, ExpiresAt: exp}, nil
}
