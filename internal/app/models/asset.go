package models

// AssetRecord is one inventory row in a faculty table. The `no` column is the
// caller-assigned business key, unique within its table; `id` is assigned by
// the database and immutable.
type AssetRecord struct {
	ID          int64  `json:"id" db:"id" example:"1"`                                // Storage-assigned primary key
	No          int64  `json:"no" db:"no" example:"5"`                                // Caller-visible sequence number
	Gedung      string `json:"gedung" db:"gedung" example:"A"`                        // Building
	Lantai      int    `json:"lantai" db:"lantai" example:"2"`                        // Floor
	FK          string `json:"fk" db:"fk" example:"FEB"`                              // Faculty code
	SubUnit     string `json:"subUnit" db:"sub_unit" example:"Jurusan Manajemen"`     // Organizational sub-unit
	NamaRuangan string `json:"namaRuangan" db:"nama_ruangan" example:"Ruang Kuliah 201"` // Room name
	NamaBarang  string `json:"namaBarang" db:"nama_barang" example:"Proyektor"`       // Item name
	Jumlah      int    `json:"jumlah" db:"jumlah" example:"3"`                        // Quantity
	Kondisi     string `json:"kondisi" db:"kondisi" example:"baik"`                   // Condition
	Keterangan  string `json:"keterangan" db:"keterangan"`                            // Free-form notes
}
