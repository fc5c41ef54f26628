package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/paging"
)

// ErrInvalidID is returned when a path id is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// IDParam parses the chi URL parameter name as a positive int64.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// PageParams reads ?limit= and ?offset= and normalizes them.
func PageParams(r *http.Request) (paging.Opts, error) {
	var opts paging.Opts
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return paging.Opts{}, fmt.Errorf("%w: limit %q", paging.ErrInvalidPage, v)
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return paging.Opts{}, fmt.Errorf("%w: offset %q", paging.ErrInvalidPage, v)
		}
		opts.Offset = n
	}
	return opts.Normalize()
}
