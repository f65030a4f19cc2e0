package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/fakultas/ekonomi?"+rawQuery, nil)
	return c
}

func TestParseListOptions(t *testing.T) {
	lantaiTwo := 2

	tests := []struct {
		name     string
		rawQuery string
		want     ListOptions
	}{
		{
			name:     "defaults",
			rawQuery: "",
			want:     ListOptions{Skip: 0, Limit: DefaultLimit},
		},
		{
			name:     "explicit pagination",
			rawQuery: "skip=20&limit=10",
			want:     ListOptions{Skip: 20, Limit: 10},
		},
		{
			name:     "limit capped",
			rawQuery: "limit=9999",
			want:     ListOptions{Limit: MaxLimit},
		},
		{
			name:     "negative values fall back",
			rawQuery: "skip=-5&limit=-1",
			want:     ListOptions{Skip: 0, Limit: DefaultLimit},
		},
		{
			name:     "non numeric values fall back",
			rawQuery: "skip=abc&limit=xyz",
			want:     ListOptions{Skip: 0, Limit: DefaultLimit},
		},
		{
			name:     "equality filters",
			rawQuery: "gedung=A&lantai=2&fk=FEB&subUnit=TU",
			want:     ListOptions{Limit: DefaultLimit, Gedung: "A", Lantai: &lantaiTwo, FK: "FEB", SubUnit: "TU"},
		},
		{
			name:     "invalid lantai ignored",
			rawQuery: "lantai=abc",
			want:     ListOptions{Limit: DefaultLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListOptions(contextWithQuery(t, tt.rawQuery))

			if got.Skip != tt.want.Skip {
				t.Errorf("Skip = %d, want %d", got.Skip, tt.want.Skip)
			}
			if got.Limit != tt.want.Limit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.want.Limit)
			}
			if got.Gedung != tt.want.Gedung {
				t.Errorf("Gedung = %q, want %q", got.Gedung, tt.want.Gedung)
			}
			if got.FK != tt.want.FK {
				t.Errorf("FK = %q, want %q", got.FK, tt.want.FK)
			}
			if got.SubUnit != tt.want.SubUnit {
				t.Errorf("SubUnit = %q, want %q", got.SubUnit, tt.want.SubUnit)
			}
			switch {
			case tt.want.Lantai == nil && got.Lantai != nil:
				t.Errorf("Lantai = %d, want nil", *got.Lantai)
			case tt.want.Lantai != nil && got.Lantai == nil:
				t.Errorf("Lantai = nil, want %d", *tt.want.Lantai)
			case tt.want.Lantai != nil && *got.Lantai != *tt.want.Lantai:
				t.Errorf("Lantai = %d, want %d", *got.Lantai, *tt.want.Lantai)
			}
		})
	}
}
