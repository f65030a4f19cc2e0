package services

import (
	"context"

	"github.com/rakha/simaset/internal/app/models"
	"github.com/rakha/simaset/internal/pkg/helpers"
)

// mockAssetStore implements AssetStore with overridable behavior per test.
type mockAssetStore struct {
	faculty    models.Faculty
	getByIDFn  func(ctx context.Context, id int64) (*models.AssetRecord, error)
	getByNoFn  func(ctx context.Context, no int64) (*models.AssetRecord, error)
	getMultiFn func(ctx context.Context, opts helpers.ListOptions) ([]*models.AssetRecord, error)
	createFn   func(ctx context.Context, rec *models.AssetRecord) (int64, error)
	updateFn   func(ctx context.Context, rec *models.AssetRecord) error
	deleteFn   func(ctx context.Context, id int64) error
	searchFn   func(ctx context.Context, term string, opts helpers.ListOptions) ([]*models.AssetRecord, error)
}

func (m *mockAssetStore) Faculty() models.Faculty { return m.faculty }

func (m *mockAssetStore) GetByID(ctx context.Context, id int64) (*models.AssetRecord, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAssetStore) GetByNo(ctx context.Context, no int64) (*models.AssetRecord, error) {
	return m.getByNoFn(ctx, no)
}

func (m *mockAssetStore) GetMulti(ctx context.Context, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
	return m.getMultiFn(ctx, opts)
}

func (m *mockAssetStore) Create(ctx context.Context, rec *models.AssetRecord) (int64, error) {
	return m.createFn(ctx, rec)
}

func (m *mockAssetStore) Update(ctx context.Context, rec *models.AssetRecord) error {
	return m.updateFn(ctx, rec)
}

func (m *mockAssetStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAssetStore) Search(ctx context.Context, term string, opts helpers.ListOptions) ([]*models.AssetRecord, error) {
	return m.searchFn(ctx, term, opts)
}

// mockUserStore implements UserStore with overridable behavior per test.
type mockUserStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	getMultiFn      func(ctx context.Context, skip, limit int) ([]*models.User, error)
	createFn        func(ctx context.Context, user *models.User) (int64, error)
	updateFn        func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id int64) error
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockUserStore) GetMulti(ctx context.Context, skip, limit int) ([]*models.User, error) {
	return m.getMultiFn(ctx, skip, limit)
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) Update(ctx context.Context, user *models.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}
