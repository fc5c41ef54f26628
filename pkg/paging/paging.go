// Package paging holds limit/offset options for list queries.
package paging

import "errors"

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ErrInvalidPage is returned for negative limits or offsets.
var ErrInvalidPage = errors.New("invalid pagination parameters")

// Opts contains pagination parameters for list queries.
type Opts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// Normalize applies the default limit when Limit is zero and caps it at
// MaxLimit. Negative values are rejected.
func (o Opts) Normalize() (Opts, error) {
	if o.Limit < 0 || o.Offset < 0 {
		return Opts{}, ErrInvalidPage
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o, nil
}

// Window returns the [start, end) bounds of o over a slice of length n.
func (o Opts) Window(n int) (int, int) {
	start := min(o.Offset, n)
	end := min(start+o.Limit, n)
	return start, end
}
