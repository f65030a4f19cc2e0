package dto

import "github.com/rakha/simaset/internal/app/models"

// CreateAssetRequest carries a new inventory record. The `no` is assigned by
// the caller and must not collide with an existing row in the same dataset.
// Lantai deliberately has no required tag: 0 means the ground floor.
type CreateAssetRequest struct {
	No          int64  `json:"no" binding:"required,min=1"`
	Gedung      string `json:"gedung" binding:"required"`
	Lantai      int    `json:"lantai" binding:"min=0"`
	FK          string `json:"fk"`
	SubUnit     string `json:"subUnit"`
	NamaRuangan string `json:"namaRuangan"`
	NamaBarang  string `json:"namaBarang"`
	Jumlah      int    `json:"jumlah" binding:"min=0"`
	Kondisi     string `json:"kondisi"`
	Keterangan  string `json:"keterangan"`
}

// UpdateAssetRequest is a partial update; nil fields keep the stored value.
type UpdateAssetRequest struct {
	No          *int64  `json:"no" binding:"omitempty,min=1"`
	Gedung      *string `json:"gedung"`
	Lantai      *int    `json:"lantai" binding:"omitempty,min=0"`
	FK          *string `json:"fk"`
	SubUnit     *string `json:"subUnit"`
	NamaRuangan *string `json:"namaRuangan"`
	NamaBarang  *string `json:"namaBarang"`
	Jumlah      *int    `json:"jumlah" binding:"omitempty,min=0"`
	Kondisi     *string `json:"kondisi"`
	Keterangan  *string `json:"keterangan"`
}

// FacultySearchResult groups fan-out search hits by dataset.
type FacultySearchResult struct {
	Faculty string                `json:"faculty" example:"ekonomi"`
	Records []*models.AssetRecord `json:"records"`
}
