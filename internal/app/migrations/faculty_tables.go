package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/pkg/logger"
)

// facultyTableTemplate is the shared schema for every faculty dataset. The
// UNIQUE constraint on "no" is what makes concurrent duplicate submissions
// resolve to exactly one success.
const facultyTableTemplate = `
CREATE TABLE IF NOT EXISTS %s (
	id BIGSERIAL PRIMARY KEY,
	no BIGINT NOT NULL UNIQUE,
	gedung VARCHAR(64) NOT NULL,
	lantai INTEGER NOT NULL DEFAULT 0,
	fk VARCHAR(16) NOT NULL DEFAULT '',
	sub_unit VARCHAR(128) NOT NULL DEFAULT '',
	nama_ruangan VARCHAR(128) NOT NULL DEFAULT '',
	nama_barang VARCHAR(128) NOT NULL DEFAULT '',
	jumlah INTEGER NOT NULL DEFAULT 0,
	kondisi VARCHAR(32) NOT NULL DEFAULT '',
	keterangan TEXT NOT NULL DEFAULT ''
);`

// EnsureFacultyTables creates the per-faculty inventory tables from the
// registry. Tables are identical in shape; only the name varies.
func EnsureFacultyTables(ctx context.Context, db *pgxpool.Pool, faculties []models.Faculty) error {
	for _, faculty := range faculties {
		if _, err := db.Exec(ctx, fmt.Sprintf(facultyTableTemplate, faculty.Table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", faculty.Table, err)
		}
		logger.Debug().Str("table", faculty.Table).Msg("Faculty table ensured")
	}
	return nil
}
