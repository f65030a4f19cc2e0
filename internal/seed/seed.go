package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/rakha/simaset/internal/app/models"
	appRepos "github.com/rakha/simaset/internal/app/repositories"
	"github.com/rakha/simaset/internal/config"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultAdmin ensures a default admin account exists so the first
// login is possible on a fresh database. Does nothing when the configured
// password is empty or the account already exists.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin password configured, skipping default admin creation")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashed,
		FullName: "Administrator",
		Role:     appModels.RoleAdmin,
	}

	if _, err := userRepo.Create(ctx, admin); err != nil {
		// A concurrent boot may have created it first
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Default admin account created")
	return nil
}
