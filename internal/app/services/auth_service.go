package services

import (
	"context"
	"errors"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/auth"
)

// AuthService verifies credentials and issues access tokens
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userStore  UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userStore UserStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userStore:  userStore,
		jwtService: jwtService,
	}
}

// Login verifies the username/password pair and returns a signed token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error) {
	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, user, nil
}
