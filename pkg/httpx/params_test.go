package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/paging"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"9007199254740993", 9007199254740993, false},
		{"0", 0, true},
		{"-4", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := withURLParam(httptest.NewRequest(http.MethodGet, "/", http.NoBody), "id", tt.raw)
			got, err := httpx.IDParam(r, "id")
			if tt.wantErr {
				if !errors.Is(err, httpx.ErrInvalidID) {
					t.Fatalf("expected ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got (%d, %v), want %d", got, err, tt.want)
			}
		})
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query   string
		want    paging.Opts
		wantErr bool
	}{
		{"", paging.Opts{Limit: paging.DefaultLimit}, false},
		{"?limit=10&offset=30", paging.Opts{Limit: 10, Offset: 30}, false},
		{"?limit=1000", paging.Opts{Limit: paging.MaxLimit}, false},
		{"?limit=ten", paging.Opts{}, true},
		{"?offset=-1", paging.Opts{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := httpx.PageParams(httptest.NewRequest(http.MethodGet, "/api/items"+tt.query, http.NoBody))
			if tt.wantErr {
				if !errors.Is(err, paging.ErrInvalidPage) {
					t.Fatalf("expected ErrInvalidPage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
