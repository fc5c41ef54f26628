package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/orderdesk/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestSecurityHeaders(t *testing.T) {
	h := httpx.SecurityHeaders(false)(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'",
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
	// no HSTS over plain HTTP
	if got := rr.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("unexpected HSTS header %q", got)
	}
}

// TestRequestBodyLimit_WithinLimit verifies requests under the cap pass through.
func TestRequestBodyLimit_WithinLimit(t *testing.T) {
	const limit = 100

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+1)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("a", 50))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(gotBody) != 50 {
		t.Fatalf("expected 50 bytes read, got %d", len(gotBody))
	}
}

// TestRequestBodyLimit_ExceedsLimit verifies that reading beyond the cap returns an error.
func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	var readErr error
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+5)
		_, readErr = r.Body.Read(buf)
		if readErr != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

func TestNewRouter_RateLimitPerIP(t *testing.T) {
	r := httpx.NewRouter(
		httpx.ServerConfig{ServiceName: "test", IsDevelopment: true, RateLimitPerMinute: 2, CORSAllowedOrigins: "*"},
		httpx.Middlewares{},
	)
	r.Get("/api/items", okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody)
		req.RemoteAddr = "10.0.0.1:5000"
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %d", codes[2])
	}
}

func TestNewRouter_NoRateLimitWhenZero(t *testing.T) {
	r := httpx.NewRouter(
		httpx.ServerConfig{ServiceName: "test", IsDevelopment: true, CORSAllowedOrigins: "*"},
		httpx.Middlewares{},
	)
	r.Get("/api/items", okHandler)

	for i := range 5 {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rr.Code)
		}
	}
}

func TestCORSMiddleware_ExposesLocation(t *testing.T) {
	h := httpx.CORSMiddleware("https://desk.example.com")(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Origin", "https://desk.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://desk.example.com" {
		t.Fatalf("Allow-Origin: got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Location") {
		t.Fatalf("Expose-Headers should list Location, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("explicit origins should allow credentials, got %q", got)
	}
}

func TestNewRouter_RecoveryWrapsTimeout(t *testing.T) {
	recovered := false
	recovery := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recover() != nil {
					recovered = true
					w.WriteHeader(http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
	r := httpx.NewRouter(httpx.ServerConfig{IsDevelopment: true}, httpx.Middlewares{Recovery: recovery})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", http.NoBody))

	if !recovered || rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected recovered 500, got recovered=%v code=%d", recovered, rr.Code)
	}
}
