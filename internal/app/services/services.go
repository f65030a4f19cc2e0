package services

import (
	"context"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/pkg/helpers"
)

// AssetStore is the per-dataset persistence contract the asset service
// depends on. Satisfied by repositories.AssetRepository.
type AssetStore interface {
	Faculty() models.Faculty
	GetByID(ctx context.Context, id int64) (*models.AssetRecord, error)
	GetByNo(ctx context.Context, no int64) (*models.AssetRecord, error)
	GetMulti(ctx context.Context, opts helpers.ListOptions) ([]*models.AssetRecord, error)
	Create(ctx context.Context, rec *models.AssetRecord) (int64, error)
	Update(ctx context.Context, rec *models.AssetRecord) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string, opts helpers.ListOptions) ([]*models.AssetRecord, error)
}

// UserStore is the persistence contract the user and auth services depend on.
// Satisfied by repositories.UserRepository.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetMulti(ctx context.Context, skip, limit int) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}
