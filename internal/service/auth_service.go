package service

import (
	"context"
	"errors"

	"intent-chatbot/internal/dto"
	"intent-chatbot/pkg/auth"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const adminSubject = "admin"

// AuthService issues admin tokens for the training endpoints.
type AuthService struct {
	jwtManager   *auth.JWTManager
	passwordHash string
	logger       *zap.Logger
}

func NewAuthService(jwtManager *auth.JWTManager, passwordHash string, logger *zap.Logger) *AuthService {
	return &AuthService{
		jwtManager:   jwtManager,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

func (s *AuthService) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if !auth.CheckPasswordHash(req.Password, s.passwordHash) {
		s.logger.Warn("Admin login rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(adminSubject)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtManager.GetTokenDuration().Seconds()),
	}, nil
}
