package shared

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// URLID parses a positive integer id from the route. Zero means invalid.
func URLID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// QueryID parses an optional integer filter from the query string.
// Zero means the filter is absent.
func QueryID(r *http.Request, name string) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
