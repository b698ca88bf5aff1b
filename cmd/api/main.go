package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"readingplan/internal/catalog"
	apphttp "readingplan/internal/http"
	"readingplan/internal/httpx"
	"readingplan/internal/plan"
	"readingplan/internal/platform/pdfexport"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	index := mustLoadIndex(ctx, cfg)
	log.Printf("catalog loaded source=%s books=%d chapters=%d", cfg.CatalogSource, len(index.Books()), index.TotalChapters())

	planService := plan.NewService(index)
	planHandler := apphttp.NewPlanHandler(planService, pdfexport.Options{Columns: cfg.PDFColumns, Title: cfg.PDFTitle})
	bookHandler := catalog.NewHTTPHandler(index)

	var limiter *httpx.RateLimitMiddleware
	if cfg.RateLimitRPS > 0 {
		limiter = httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	httpServer := &http.Server{
		Addr: cfg.Addr,
		Handler: apphttp.NewRouter(planHandler, bookHandler, apphttp.RouterConfig{
			AllowedOrigins: cfg.AllowedOrigins,
			RateLimit:      limiter,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

// mustLoadIndex reads the catalog once from the configured source and releases it;
// the index does not depend on the source afterwards.
func mustLoadIndex(ctx context.Context, cfg Config) *catalog.Index {
	var (
		repo    catalog.Repository
		release = func() {}
	)

	switch cfg.CatalogSource {
	case sourcePostgres:
		pool := mustOpenDB(ctx, cfg.DatabaseDSN)
		repo = catalog.NewPostgresRepo(pool, cfg.DBTimeout)
		release = pool.Close
	case sourceSQLite:
		db, err := catalog.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("cannot open sqlite catalog: %v", err)
		}
		repo = catalog.NewSQLiteRepo(db)
		release = func() { _ = db.Close() }
	}

	index, err := catalog.NewService(repo).LoadIndex(ctx)
	release()
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}
	return index
}

func mustOpenDB(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
