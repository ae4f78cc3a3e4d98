package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-billing-svc/internal/config"
	"society-billing-svc/pkg/apperrors"
)

func authConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "s3cret",
		JWTSecret:     "test-signing-key",
		TokenTTL:      time.Hour,
	}
}

func TestLogin_IssuesValidToken(t *testing.T) {
	svc := NewAuthService(authConfig(), testLogger())

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(authConfig(), testLogger())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnconfiguredCredentials(t *testing.T) {
	cfg := authConfig()
	cfg.AdminUsername = ""
	svc := NewAuthService(cfg, testLogger())

	_, err := svc.Login("admin", "s3cret")

	var dErr *apperrors.DependencyError
	assert.ErrorAs(t, err, &dErr)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	cfg := authConfig()
	cfg.TokenTTL = -time.Minute
	svc := NewAuthService(cfg, testLogger())

	token, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	assert.Error(t, svc.ValidateToken(token))
}

func TestValidateToken_RejectsForeignSignature(t *testing.T) {
	svc := NewAuthService(authConfig(), testLogger())

	other := authConfig()
	other.JWTSecret = "another-key"
	otherSvc := NewAuthService(other, testLogger())

	token, err := otherSvc.Login("admin", "s3cret")
	require.NoError(t, err)

	assert.Error(t, svc.ValidateToken(token))
	assert.Error(t, svc.ValidateToken("not-a-token"))
}
