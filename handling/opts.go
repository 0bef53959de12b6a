package handling

import (
	"net/http"
	"storebill_server/database"
	"strconv"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ParsePagination parses page/per_page query parameters, clamping them
// to sane bounds. Absent or malformed values fall back to the defaults.
func ParsePagination(r *http.Request) database.Pagination {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}

	perPage := defaultPerPage
	if raw := query.Get("per_page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			perPage = parsed
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return database.Pagination{Page: page, PerPage: perPage}
}
