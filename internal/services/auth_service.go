package services

import (
	"context"
	"time"

	"realestate-backoffice/internal/auth"
	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/validators"
	"realestate-backoffice/pkg/config"
	"realestate-backoffice/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// AuthService signs in back-office operators listed in the configuration.
type AuthService struct {
	operators map[string]string
	secret    string
	ttl       time.Duration
	validator *validators.Validator
}

func NewAuthService(operators []config.Operator, secret string, ttl time.Duration, validator *validators.Validator) *AuthService {
	hashes := make(map[string]string, len(operators))
	for _, op := range operators {
		hashes[op.Username] = op.PasswordHash
	}
	return &AuthService{operators: hashes, secret: secret, ttl: ttl, validator: validator}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*auth.TokenDetails, error) {
	if err := s.validator.Login(username, password); err != nil {
		return nil, err
	}

	hash, ok := s.operators[username]
	if !ok {
		logger.GlobalLogger.Warnf("Login attempt for unknown operator %q", username)
		return nil, errors.Unauthorized("unknown operator")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		logger.GlobalLogger.Warnf("Login failed for operator %q", username)
		return nil, errors.Unauthorized("password mismatch")
	}

	token, err := auth.GenerateJWT(username, s.secret, s.ttl)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return token, nil
}
