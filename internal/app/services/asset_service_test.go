package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/pkg/apperrors"
	"github.com/rakha/simaset/internal/pkg/helpers"
)

var ekonomiFaculty = models.Faculty{Slug: "ekonomi", Table: "fk_ekonomi", Code: "FEB", Name: "Fakultas Ekonomi dan Bisnis"}

func newAssetServiceWith(store *mockAssetStore) AssetService {
	return NewAssetService(map[string]AssetStore{store.faculty.Slug: store})
}

func TestAssetServiceGetByID(t *testing.T) {
	record := &models.AssetRecord{ID: 7, No: 101, Gedung: "A", NamaBarang: "Meja"}
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getByIDFn: func(ctx context.Context, id int64) (*models.AssetRecord, error) {
			if id != 7 {
				return nil, apperrors.ErrRecordNotFound
			}
			return record, nil
		},
	}
	svc := newAssetServiceWith(store)
	ctx := context.Background()

	got, err := svc.GetByID(ctx, "ekonomi", 7)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if got.No != 101 {
		t.Errorf("record No = %d, want 101", got.No)
	}

	if _, err := svc.GetByID(ctx, "ekonomi", 8); !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("error = %v, want ErrRecordNotFound", err)
	}
	if _, err := svc.GetByID(ctx, "ekonomi", 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.GetByID(ctx, "farmasi", 7); !errors.Is(err, apperrors.ErrFacultyUnknown) {
		t.Errorf("error = %v, want ErrFacultyUnknown", err)
	}
}

func TestAssetServiceGetByNo(t *testing.T) {
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getByNoFn: func(ctx context.Context, no int64) (*models.AssetRecord, error) {
			if no != 205 {
				return nil, apperrors.ErrRecordNotFound
			}
			return &models.AssetRecord{ID: 3, No: 205}, nil
		},
	}
	svc := newAssetServiceWith(store)
	ctx := context.Background()

	got, err := svc.GetByNo(ctx, "ekonomi", 205)
	if err != nil {
		t.Fatalf("GetByNo returned error: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("record ID = %d, want 3", got.ID)
	}

	if _, err := svc.GetByNo(ctx, "ekonomi", -1); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestAssetServiceCreate(t *testing.T) {
	var created *models.AssetRecord
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		createFn: func(ctx context.Context, rec *models.AssetRecord) (int64, error) {
			created = rec
			return 11, nil
		},
	}
	svc := newAssetServiceWith(store)

	got, err := svc.Create(context.Background(), "ekonomi", &dto.CreateAssetRequest{
		No:         301,
		Gedung:     "  B  ",
		Lantai:     2,
		NamaBarang: "Kursi",
		Jumlah:     10,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.ID != 11 {
		t.Errorf("record ID = %d, want 11", got.ID)
	}
	if created.Gedung != "B" {
		t.Errorf("Gedung = %q, want trimmed %q", created.Gedung, "B")
	}
	if created.FK != "FEB" {
		t.Errorf("FK = %q, want dataset default %q", created.FK, "FEB")
	}
}

func TestAssetServiceCreateValidatesGedung(t *testing.T) {
	store := &mockAssetStore{faculty: ekonomiFaculty}
	svc := newAssetServiceWith(store)

	_, err := svc.Create(context.Background(), "ekonomi", &dto.CreateAssetRequest{No: 1, Gedung: "   "})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}

func TestAssetServiceCreateDuplicateNumber(t *testing.T) {
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		createFn: func(ctx context.Context, rec *models.AssetRecord) (int64, error) {
			return 0, apperrors.ErrDuplicateNumber
		},
	}
	svc := newAssetServiceWith(store)

	_, err := svc.Create(context.Background(), "ekonomi", &dto.CreateAssetRequest{No: 301, Gedung: "B"})
	if !errors.Is(err, apperrors.ErrDuplicateNumber) {
		t.Errorf("error = %v, want ErrDuplicateNumber", err)
	}
}

func TestAssetServiceUpdateMergesFields(t *testing.T) {
	existing := &models.AssetRecord{
		ID: 5, No: 400, Gedung: "A", Lantai: 1, FK: "FEB",
		NamaRuangan: "R101", NamaBarang: "Lemari", Jumlah: 2, Kondisi: "baik",
	}
	var updated *models.AssetRecord
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getByIDFn: func(ctx context.Context, id int64) (*models.AssetRecord, error) {
			copied := *existing
			return &copied, nil
		},
		updateFn: func(ctx context.Context, rec *models.AssetRecord) error {
			updated = rec
			return nil
		},
	}
	svc := newAssetServiceWith(store)

	newJumlah := 5
	newKondisi := "rusak ringan"
	got, err := svc.Update(context.Background(), "ekonomi", 5, &dto.UpdateAssetRequest{
		Jumlah:  &newJumlah,
		Kondisi: &newKondisi,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Jumlah != 5 {
		t.Errorf("Jumlah = %d, want 5", updated.Jumlah)
	}
	if updated.Kondisi != "rusak ringan" {
		t.Errorf("Kondisi = %q, want %q", updated.Kondisi, "rusak ringan")
	}
	// Untouched fields keep their stored values
	if got.No != 400 || got.Gedung != "A" || got.NamaBarang != "Lemari" {
		t.Errorf("unchanged fields were modified: %+v", got)
	}
}

func TestAssetServiceUpdateRowVanished(t *testing.T) {
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getByIDFn: func(ctx context.Context, id int64) (*models.AssetRecord, error) {
			return &models.AssetRecord{ID: 5, No: 400, Gedung: "A"}, nil
		},
		updateFn: func(ctx context.Context, rec *models.AssetRecord) error {
			return apperrors.ErrUpdateFailed
		},
	}
	svc := newAssetServiceWith(store)

	_, err := svc.Update(context.Background(), "ekonomi", 5, &dto.UpdateAssetRequest{})
	if !errors.Is(err, apperrors.ErrUpdateFailed) {
		t.Errorf("error = %v, want ErrUpdateFailed", err)
	}
}

func TestAssetServiceUpdateNotFound(t *testing.T) {
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getByIDFn: func(ctx context.Context, id int64) (*models.AssetRecord, error) {
			return nil, apperrors.ErrRecordNotFound
		},
	}
	svc := newAssetServiceWith(store)

	_, err := svc.Update(context.Background(), "ekonomi", 99, &dto.UpdateAssetRequest{})
	if !errors.Is(err, apperrors.ErrRecordNotFound) {
		t.Errorf("error = %v, want ErrRecordNotFound", err)
	}
}

func TestAssetServiceDelete(t *testing.T) {
	var deletedID int64
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	svc := newAssetServiceWith(store)
	ctx := context.Background()

	if err := svc.Delete(ctx, "ekonomi", 9); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deletedID != 9 {
		t.Errorf("deleted ID = %d, want 9", deletedID)
	}

	if err := svc.Delete(ctx, "ekonomi", 0); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
	if err := svc.Delete(ctx, "farmasi", 9); !errors.Is(err, apperrors.ErrFacultyUnknown) {
		t.Errorf("error = %v, want ErrFacultyUnknown", err)
	}
}

func TestAssetServiceList(t *testing.T) {
	var gotOpts helpers.ListOptions
	store := &mockAssetStore{
		faculty: ekonomiFaculty,
		getMultiFn: func(ctx context.Context, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
			gotOpts = opts
			return []*models.AssetRecord{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := newAssetServiceWith(store)

	records, err := svc.List(context.Background(), "ekonomi", helpers.ListOptions{Skip: 10, Limit: 20, Gedung: "A"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
	if gotOpts.Skip != 10 || gotOpts.Limit != 20 || gotOpts.Gedung != "A" {
		t.Errorf("options not forwarded to store: %+v", gotOpts)
	}
}

func TestAssetServiceSearch(t *testing.T) {
	hit := &models.AssetRecord{ID: 1, NamaBarang: "Meja Rapat"}

	searchStore := func(faculty models.Faculty, records []*models.AssetRecord) *mockAssetStore {
		return &mockAssetStore{
			faculty: faculty,
			searchFn: func(ctx context.Context, term string, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
				return records, nil
			},
		}
	}

	teknikFaculty := models.Faculty{Slug: "teknik", Table: "fk_teknik", Code: "FT", Name: "Fakultas Teknik"}
	svc := NewAssetService(map[string]AssetStore{
		"ekonomi": searchStore(ekonomiFaculty, []*models.AssetRecord{hit}),
		"teknik":  searchStore(teknikFaculty, nil),
	})

	results, err := svc.Search(context.Background(), "meja", helpers.ListOptions{Limit: 50})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	// Datasets without hits are omitted from the result
	if len(results) != 1 {
		t.Fatalf("got %d result groups, want 1", len(results))
	}
	if results[0].Faculty != "ekonomi" {
		t.Errorf("result faculty = %q, want %q", results[0].Faculty, "ekonomi")
	}
}

func TestAssetServiceSearchTermTooShort(t *testing.T) {
	svc := NewAssetService(map[string]AssetStore{})

	for _, term := range []string{"", "a", "  a  "} {
		if _, err := svc.Search(context.Background(), term, helpers.ListOptions{}); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("Search(%q) error = %v, want ErrValidationFailed", term, err)
		}
	}
}
