package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(context.Context) error { return s.err }

func up() *stubChecker   { return &stubChecker{} }
func down() *stubChecker { return &stubChecker{err: errors.New("conn refused")} }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		checks httpx.HealthChecks
		status int
		want   map[string]string
	}{
		{
			name:   "all healthy",
			checks: httpx.HealthChecks{Database: up(), Redis: up(), EventBus: up()},
			status: http.StatusOK,
			want:   map[string]string{"status": "ok", "database": "ok", "redis": "ok", "event_bus": "ok"},
		},
		{
			name:   "database down",
			checks: httpx.HealthChecks{Database: down(), Redis: up(), EventBus: up()},
			status: http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "database": "unreachable"},
		},
		{
			name:   "redis down",
			checks: httpx.HealthChecks{Database: up(), Redis: down(), EventBus: up()},
			status: http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "redis": "unreachable"},
		},
		{
			name:   "event bus down",
			checks: httpx.HealthChecks{Database: up(), Redis: up(), EventBus: down()},
			status: http.StatusServiceUnavailable,
			want:   map[string]string{"status": "degraded", "event_bus": "unreachable"},
		},
		{
			name:   "nil checker is disabled",
			checks: httpx.HealthChecks{Database: up(), Redis: up()},
			status: http.StatusOK,
			want:   map[string]string{"status": "ok", "event_bus": "disabled"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler(tt.checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			require.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

			var resp map[string]string
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			for k, v := range tt.want {
				assert.Equal(t, v, resp[k], k)
			}
		})
	}
}
