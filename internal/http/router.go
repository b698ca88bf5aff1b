package http

import (
	"net/http"

	"readingplan/internal/catalog"
	"readingplan/internal/httpx"
)

const maxRequestBytes = 1 << 20

// RouterConfig carries the optional pieces of the middleware chain.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimit      *httpx.RateLimitMiddleware
}

func readOnly(h http.HandlerFunc) http.Handler {
	return MethodMux(map[string]http.Handler{
		http.MethodGet:  h,
		http.MethodHead: h,
	})
}

// NewRouter registers every route and wraps the mux in the shared middleware chain.
func NewRouter(plans *PlanHandler, books *catalog.HTTPHandler, cfg RouterConfig) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/{$}", readOnly(plans.Index))
	router.Handle("/plan.pdf", readOnly(plans.PDF))
	router.Handle("/api/plan", readOnly(plans.API))
	router.Handle("/api/books", readOnly(books.List))
	router.Handle("/static/", http.FileServerFS(staticFS))
	router.HandleFunc("/", plans.NotFound)

	mws := []httpx.Middleware{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	}
	if cfg.RateLimit != nil {
		mws = append(mws, cfg.RateLimit.Middleware)
	}
	return httpx.Chain(router, mws...)
}
