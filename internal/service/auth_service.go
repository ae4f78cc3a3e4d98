package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"society-billing-svc/internal/config"
	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
)

// ErrInvalidCredentials indicates a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService issues and validates signed admin session tokens.
type AuthService interface {
	Login(username, password string) (string, error)
	ValidateToken(token string) error
}

// authService implements AuthService
type authService struct {
	cfg    config.AuthConfig
	logger *logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(cfg config.AuthConfig, logger *logger.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		logger: logger,
	}
}

// Login compares the credentials against the configured admin account and
// returns a signed token on success.
func (s *authService) Login(username, password string) (string, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return "", apperrors.NewDependencyError("Admin credentials not configured", nil)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		s.logger.WithField("username", username).Warn("Failed login attempt")
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    "society-billing-svc",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies the token's signature and expiry.
func (s *authService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
