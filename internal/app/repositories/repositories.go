package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakha/simaset/internal/app/models"
)

// Repositories holds all the repository instances. One AssetRepository exists
// per faculty dataset in the registry, keyed by slug.
type Repositories struct {
	UserRepository    *UserRepository
	AssetRepositories map[string]*AssetRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	assets := make(map[string]*AssetRepository, len(models.Faculties))
	for _, faculty := range models.Faculties {
		assets[faculty.Slug] = NewAssetRepository(db, faculty)
	}

	return &Repositories{
		UserRepository:    NewUserRepository(db),
		AssetRepositories: assets,
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
