package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is applied when no limit query parameter is supplied.
	DefaultLimit = 100
	// MaxLimit bounds a single page regardless of what the caller asks for.
	MaxLimit = 500
)

// ListOptions is the immutable filter/pagination contract for list queries.
// Zero-valued filters impose no restriction; present ones are conjunctive
// equality matches.
type ListOptions struct {
	Skip    int
	Limit   int
	Gedung  string
	Lantai  *int
	FK      string
	SubUnit string
}

// ParseListOptions extracts skip/limit and the optional equality filters from
// the request query. Invalid or negative values fall back to the defaults.
func ParseListOptions(c *gin.Context) ListOptions {
	opts := ListOptions{Limit: DefaultLimit}

	if skip, err := strconv.Atoi(c.DefaultQuery("skip", "0")); err == nil && skip > 0 {
		opts.Skip = skip
	}

	if limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))); err == nil && limit > 0 {
		if limit > MaxLimit {
			limit = MaxLimit
		}
		opts.Limit = limit
	}

	opts.Gedung = c.Query("gedung")
	opts.FK = c.Query("fk")
	opts.SubUnit = c.Query("subUnit")

	if lantaiStr := c.Query("lantai"); lantaiStr != "" {
		if lantai, err := strconv.Atoi(lantaiStr); err == nil {
			opts.Lantai = &lantai
		}
	}

	return opts
}
