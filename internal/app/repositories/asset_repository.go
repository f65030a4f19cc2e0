package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/helpers"
	"github.com/rakha/simaset/internal/pkg/logger"
)

// assetColumns is the uniform column set shared by every faculty table.
var assetColumns = []string{
	"id", "no", "gedung", "lantai", "fk", "sub_unit",
	"nama_ruangan", "nama_barang", "jumlah", "kondisi", "keterangan",
}

// AssetRepository handles inventory database operations for one faculty
// dataset. The same implementation serves every table in the registry;
// only the descriptor differs.
type AssetRepository struct {
	db      *pgxpool.Pool
	faculty models.Faculty
	sb      squirrel.StatementBuilderType
}

// NewAssetRepository creates a repository bound to one faculty table
func NewAssetRepository(db *pgxpool.Pool, faculty models.Faculty) *AssetRepository {
	return &AssetRepository{
		db:      db,
		faculty: faculty,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Faculty returns the registry descriptor this repository serves.
func (r *AssetRepository) Faculty() models.Faculty {
	return r.faculty
}

func (r *AssetRepository) scanRecord(row pgx.Row) (*models.AssetRecord, error) {
	rec := &models.AssetRecord{}
	err := row.Scan(
		&rec.ID, &rec.No, &rec.Gedung, &rec.Lantai, &rec.FK, &rec.SubUnit,
		&rec.NamaRuangan, &rec.NamaBarang, &rec.Jumlah, &rec.Kondisi, &rec.Keterangan,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID retrieves a record by primary key
func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*models.AssetRecord, error) {
	sql, args, err := r.sb.Select(assetColumns...).
		From(r.faculty.Table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get query: %w", err)
	}

	rec, err := r.scanRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Int64("id", id).Msg("Error scanning inventory row")
		return nil, fmt.Errorf("error getting record by ID: %w", err)
	}

	return rec, nil
}

// GetByNo retrieves a record by its caller-assigned sequence number
func (r *AssetRepository) GetByNo(ctx context.Context, no int64) (*models.AssetRecord, error) {
	sql, args, err := r.sb.Select(assetColumns...).
		From(r.faculty.Table).
		Where(squirrel.Eq{"no": no}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get-by-no query: %w", err)
	}

	rec, err := r.scanRecord(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRecordNotFound
		}
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Int64("no", no).Msg("Error scanning inventory row")
		return nil, fmt.Errorf("error getting record by no: %w", err)
	}

	return rec, nil
}

// applyFilters adds the conjunctive equality filters from opts to a select.
func applyFilters(query squirrel.SelectBuilder, opts helpers.ListOptions) squirrel.SelectBuilder {
	if opts.Gedung != "" {
		query = query.Where(squirrel.Eq{"gedung": opts.Gedung})
	}
	if opts.Lantai != nil {
		query = query.Where(squirrel.Eq{"lantai": *opts.Lantai})
	}
	if opts.FK != "" {
		query = query.Where(squirrel.Eq{"fk": opts.FK})
	}
	if opts.SubUnit != "" {
		query = query.Where(squirrel.Eq{"sub_unit": opts.SubUnit})
	}
	return query
}

// GetMulti retrieves records matching every supplied filter, ordered by
// primary key ascending so pages over a static dataset are disjoint.
func (r *AssetRepository) GetMulti(ctx context.Context, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
	query := r.sb.Select(assetColumns...).
		From(r.faculty.Table).
		OrderBy("id ASC").
		Offset(uint64(opts.Skip)).
		Limit(uint64(opts.Limit))
	query = applyFilters(query, opts)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Msg("Error executing list query")
		return nil, fmt.Errorf("error querying records: %w", err)
	}
	defer rows.Close()

	records := []*models.AssetRecord{}
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return records, nil
}

// Create inserts a new record and returns the assigned id. Uniqueness of the
// sequence number is enforced by the table's constraint, so two concurrent
// submissions with the same no yield exactly one success.
func (r *AssetRepository) Create(ctx context.Context, rec *models.AssetRecord) (int64, error) {
	sql, args, err := r.sb.Insert(r.faculty.Table).
		Columns(assetColumns[1:]...).
		Values(rec.No, rec.Gedung, rec.Lantai, rec.FK, rec.SubUnit,
			rec.NamaRuangan, rec.NamaBarang, rec.Jumlah, rec.Kondisi, rec.Keterangan).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrDuplicateNumber
		}
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Msg("Error executing create query")
		return 0, fmt.Errorf("error creating record: %w", err)
	}

	return id, nil
}

// Update replaces the mutable columns of the row identified by rec.ID
func (r *AssetRepository) Update(ctx context.Context, rec *models.AssetRecord) error {
	sql, args, err := r.sb.Update(r.faculty.Table).
		SetMap(map[string]interface{}{
			"no":           rec.No,
			"gedung":       rec.Gedung,
			"lantai":       rec.Lantai,
			"fk":           rec.FK,
			"sub_unit":     rec.SubUnit,
			"nama_ruangan": rec.NamaRuangan,
			"nama_barang":  rec.NamaBarang,
			"jumlah":       rec.Jumlah,
			"kondisi":      rec.Kondisi,
			"keterangan":   rec.Keterangan,
		}).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrDuplicateNumber
		}
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Int64("id", rec.ID).Msg("Error executing update query")
		return fmt.Errorf("error updating record: %w", err)
	}

	// The service reads the row first, so a zero row count here means it
	// disappeared between the read and the write
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUpdateFailed
	}

	return nil
}

// Delete removes the row by primary key
func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete(r.faculty.Table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}

	return nil
}

// Search returns records whose item or room name matches the query term,
// restricted by the location filters. Used by the cross-faculty fan-out.
func (r *AssetRepository) Search(ctx context.Context, term string, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
	pattern := "%" + term + "%"
	query := r.sb.Select(assetColumns...).
		From(r.faculty.Table).
		Where(squirrel.Or{
			squirrel.ILike{"nama_barang": pattern},
			squirrel.ILike{"nama_ruangan": pattern},
		}).
		OrderBy("id ASC").
		Limit(uint64(opts.Limit))
	query = applyFilters(query, opts)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("faculty", r.faculty.Slug).Msg("Error executing search query")
		return nil, fmt.Errorf("error searching records: %w", err)
	}
	defer rows.Close()

	records := []*models.AssetRecord{}
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning inventory row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return records, nil
}
