package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/auth"
)

// UserService defines the interface for user management operations
type UserService interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userStore UserStore) UserService {
	return &userServiceImpl{
		userStore: userStore,
	}
}

// GetByID retrieves a user by ID
func (s *userServiceImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	return s.userStore.GetByID(ctx, id)
}

// List retrieves users with pagination
func (s *userServiceImpl) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	return s.userStore.GetMulti(ctx, skip, limit)
}

// Create registers a new account. A colliding username surfaces as
// apperrors.ErrDuplicateUsername from the store's unique constraint.
func (s *userServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	role := models.RoleType(req.Role)
	if role == "" {
		role = models.RoleStaff
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		FullName: req.FullName,
		Role:     role,
	}

	id, err := s.userStore.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	user.ID = id
	return user, nil
}

// Update merges the supplied fields into an existing account
func (s *userServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
		}
		user.Username = username
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hashed
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = models.RoleType(*req.Role)
	}

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user by ID
func (s *userServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	return s.userStore.Delete(ctx, id)
}
