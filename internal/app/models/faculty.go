package models

// Faculty describes one fakultas inventory dataset. Every dataset stores the
// same record shape in its own table; this descriptor is what the generic
// repository and the routes are parameterized over.
type Faculty struct {
	Slug  string `json:"slug" example:"ekonomi"`
	Table string `json:"-"`
	Code  string `json:"code" example:"FEB"`
	Name  string `json:"name" example:"Fakultas Ekonomi dan Bisnis"`
}

// Faculties is the registry of inventory datasets served by the API,
// ordered as they appear in route listings.
var Faculties = []Faculty{
	{Slug: "ekonomi", Table: "fk_ekonomi", Code: "FEB", Name: "Fakultas Ekonomi dan Bisnis"},
	{Slug: "syariah", Table: "fk_syariah", Code: "FSY", Name: "Fakultas Syariah"},
	{Slug: "dakwah", Table: "fk_dakwah", Code: "FDK", Name: "Fakultas Dakwah dan Komunikasi"},
	{Slug: "tarbiyah", Table: "fk_tarbiyah", Code: "FTK", Name: "Fakultas Tarbiyah dan Keguruan"},
	{Slug: "hukum", Table: "fk_hukum", Code: "FH", Name: "Fakultas Hukum"},
	{Slug: "psikologi", Table: "fk_psikologi", Code: "FPSI", Name: "Fakultas Psikologi"},
	{Slug: "mipa", Table: "fk_mipa", Code: "FMIPA", Name: "Fakultas Matematika dan IPA"},
	{Slug: "teknik", Table: "fk_teknik", Code: "FT", Name: "Fakultas Teknik"},
	{Slug: "ilmu-komputer", Table: "fk_ilmu_komputer", Code: "FIK", Name: "Fakultas Ilmu Komputer"},
	{Slug: "kedokteran", Table: "fk_kedokteran", Code: "FKD", Name: "Fakultas Kedokteran"},
}

// FacultyBySlug looks up a registry entry by its URL slug.
func FacultyBySlug(slug string) (Faculty, bool) {
	for _, f := range Faculties {
		if f.Slug == slug {
			return f, true
		}
	}
	return Faculty{}, false
}
