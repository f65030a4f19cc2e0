package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/helpers"
)

// AssetService defines the interface for inventory operations. Every method
// is addressed by the faculty slug from the registry; an unknown slug yields
// apperrors.ErrFacultyUnknown.
type AssetService interface {
	GetByID(ctx context.Context, faculty string, id int64) (*models.AssetRecord, error)
	GetByNo(ctx context.Context, faculty string, no int64) (*models.AssetRecord, error)
	List(ctx context.Context, faculty string, opts helpers.ListOptions) ([]*models.AssetRecord, error)
	Create(ctx context.Context, faculty string, req *dto.CreateAssetRequest) (*models.AssetRecord, error)
	Update(ctx context.Context, faculty string, id int64, req *dto.UpdateAssetRequest) (*models.AssetRecord, error)
	Delete(ctx context.Context, faculty string, id int64) error
	Search(ctx context.Context, term string, opts helpers.ListOptions) ([]dto.FacultySearchResult, error)
}

// assetServiceImpl implements the AssetService interface
type assetServiceImpl struct {
	stores map[string]AssetStore
}

// NewAssetService creates a new asset service over the per-faculty stores
func NewAssetService(stores map[string]AssetStore) AssetService {
	return &assetServiceImpl{
		stores: stores,
	}
}

func (s *assetServiceImpl) resolve(faculty string) (AssetStore, error) {
	store, ok := s.stores[faculty]
	if !ok {
		return nil, apperrors.ErrFacultyUnknown
	}
	return store, nil
}

// GetByID retrieves a record by primary key
func (s *assetServiceImpl) GetByID(ctx context.Context, faculty string, id int64) (*models.AssetRecord, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid record ID", apperrors.ErrValidationFailed)
	}

	store, err := s.resolve(faculty)
	if err != nil {
		return nil, err
	}

	return store.GetByID(ctx, id)
}

// GetByNo retrieves a record by its business key
func (s *assetServiceImpl) GetByNo(ctx context.Context, faculty string, no int64) (*models.AssetRecord, error) {
	if no <= 0 {
		return nil, fmt.Errorf("%w: invalid nomor", apperrors.ErrValidationFailed)
	}

	store, err := s.resolve(faculty)
	if err != nil {
		return nil, err
	}

	return store.GetByNo(ctx, no)
}

// List retrieves a filtered, paginated page of records
func (s *assetServiceImpl) List(ctx context.Context, faculty string, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
	store, err := s.resolve(faculty)
	if err != nil {
		return nil, err
	}

	return store.GetMulti(ctx, opts)
}

// Create inserts a new record. A colliding nomor surfaces as
// apperrors.ErrDuplicateNumber from the store's unique constraint.
func (s *assetServiceImpl) Create(ctx context.Context, faculty string, req *dto.CreateAssetRequest) (*models.AssetRecord, error) {
	store, err := s.resolve(faculty)
	if err != nil {
		return nil, err
	}

	rec := &models.AssetRecord{
		No:          req.No,
		Gedung:      strings.TrimSpace(req.Gedung),
		Lantai:      req.Lantai,
		FK:          req.FK,
		SubUnit:     req.SubUnit,
		NamaRuangan: req.NamaRuangan,
		NamaBarang:  req.NamaBarang,
		Jumlah:      req.Jumlah,
		Kondisi:     req.Kondisi,
		Keterangan:  req.Keterangan,
	}
	if rec.Gedung == "" {
		return nil, fmt.Errorf("%w: gedung cannot be empty", apperrors.ErrValidationFailed)
	}
	if rec.FK == "" {
		rec.FK = store.Faculty().Code
	}

	id, err := store.Create(ctx, rec)
	if err != nil {
		return nil, err
	}

	rec.ID = id
	return rec, nil
}

// Update merges the supplied fields into the existing row. Absent rows yield
// apperrors.ErrRecordNotFound; a nomor collision with a different row yields
// apperrors.ErrDuplicateNumber.
func (s *assetServiceImpl) Update(ctx context.Context, faculty string, id int64, req *dto.UpdateAssetRequest) (*models.AssetRecord, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid record ID", apperrors.ErrValidationFailed)
	}

	store, err := s.resolve(faculty)
	if err != nil {
		return nil, err
	}

	rec, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.No != nil {
		rec.No = *req.No
	}
	if req.Gedung != nil {
		rec.Gedung = *req.Gedung
	}
	if req.Lantai != nil {
		rec.Lantai = *req.Lantai
	}
	if req.FK != nil {
		rec.FK = *req.FK
	}
	if req.SubUnit != nil {
		rec.SubUnit = *req.SubUnit
	}
	if req.NamaRuangan != nil {
		rec.NamaRuangan = *req.NamaRuangan
	}
	if req.NamaBarang != nil {
		rec.NamaBarang = *req.NamaBarang
	}
	if req.Jumlah != nil {
		rec.Jumlah = *req.Jumlah
	}
	if req.Kondisi != nil {
		rec.Kondisi = *req.Kondisi
	}
	if req.Keterangan != nil {
		rec.Keterangan = *req.Keterangan
	}

	if err := store.Update(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// Delete removes a record by primary key
func (s *assetServiceImpl) Delete(ctx context.Context, faculty string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid record ID", apperrors.ErrValidationFailed)
	}

	store, err := s.resolve(faculty)
	if err != nil {
		return err
	}

	return store.Delete(ctx, id)
}

// Search fans the query out across every dataset in the registry and groups
// the hits per faculty. Datasets without hits are omitted.
func (s *assetServiceImpl) Search(ctx context.Context, term string, opts helpers.ListOptions) ([]dto.FacultySearchResult, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return nil, fmt.Errorf("%w: search term must be at least 2 characters", apperrors.ErrValidationFailed)
	}

	results := []dto.FacultySearchResult{}
	for _, faculty := range models.Faculties {
		store, ok := s.stores[faculty.Slug]
		if !ok {
			continue
		}

		records, err := store.Search(ctx, term, opts)
		if err != nil {
			return nil, fmt.Errorf("error searching %s: %w", faculty.Slug, err)
		}
		if len(records) == 0 {
			continue
		}

		results = append(results, dto.FacultySearchResult{
			Faculty: faculty.Slug,
			Records: records,
		})
	}

	return results, nil
}
