package httpx

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

// ServerConfig holds the options for NewRouter.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// RateLimitPerMinute caps requests per client IP. Zero disables limiting.
	RateLimitPerMinute int
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Pass "*" (dev only) to allow all origins.
	CORSAllowedOrigins string
	// BodyLimitBytes defaults to 10 MB and HandlerTimeout to 30s when zero.
	BodyLimitBytes int64
	HandlerTimeout time.Duration
}

// Middlewares are the app-level handlers NewRouter installs ahead of the
// chi built-ins. A nil entry is skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logger   func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux with the standard middleware stack, outermost
// first: recovery, sentry, request id, tracing, request log, real ip, rate
// limit, CORS, body limit, timeout and security headers. Recovery sits
// outside Sentry so a re-panicked request still gets a 500.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	bodyLimit := cfg.BodyLimitBytes
	if bodyLimit <= 0 {
		bodyLimit = 10 << 20
	}
	timeout := cfg.HandlerTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	use(r, mw.Recovery, mw.Sentry, middleware.RequestID, mw.Tracing, mw.Logger, middleware.RealIP)
	if cfg.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))
	}
	r.Use(
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(bodyLimit),
		middleware.Timeout(timeout),
		SecurityHeaders(cfg.IsDevelopment),
	)
	return r
}

func use(r chi.Router, mws ...func(http.Handler) http.Handler) {
	for _, m := range mws {
		if m != nil {
			r.Use(m)
		}
	}
}

// SecurityHeaders sets CSP, HSTS, frame and referrer headers. HSTS is only
// sent over HTTPS and is skipped entirely in development.
func SecurityHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=()",
		IsDevelopment:         isDevelopment,
	}).Handler
}

// CORSMiddleware returns a CORS handler restricted to the given allowed origins.
// allowedOrigins is a comma-separated list (e.g. "https://app.example.com,http://localhost:3000").
// Pass "*" to allow all origins (development only).
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	origins := parseOrigins(allowedOrigins)
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "Location", "X-Request-Id"},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	})
}

// parseOrigins splits a comma-separated origins string into a slice, trimming spaces.
func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p := strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit returns middleware that caps the request body at maxBytes.
// When the limit is exceeded, reads on the body return an error that handlers
// should convert to a 413 response.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server with production-ready timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}
}
