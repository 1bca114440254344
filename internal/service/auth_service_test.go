package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/auth"
	"github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/internal/config"
	apperrors "github.com/chinmai-sd-123/Intelligent-Customer-Support-Ticket-Classification/pkg/util/errorutil"
)

func TestIssueToken(t *testing.T) {
	hash, err := auth.HashSecret("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(config.AuthConfig{
		JWTSecret:             "signing-key",
		AccessTokenTTLMinutes: 10,
		Clients:               map[string]string{"crm": hash},
	})
	require.True(t, svc.Enabled())

	token, err := svc.IssueToken("crm", "s3cret")
	require.NoError(t, err)
	claims, err := svc.TokenManager().ParseToken(token.Value)
	require.NoError(t, err)
	assert.Equal(t, "crm", claims.ClientID)

	_, err = svc.IssueToken("crm", "wrong")
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)

	_, err = svc.IssueToken("stranger", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
}

func TestIssueTokenDisabled(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{})
	assert.False(t, svc.Enabled())
	assert.Nil(t, svc.TokenManager())

	_, err := svc.IssueToken("crm", "s3cret")
	assert.Equal(t, "AUTH_DISABLED", apperrors.ToDomainError(err).Code)
}
