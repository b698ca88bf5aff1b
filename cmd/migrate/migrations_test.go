package main

import (
	"context"
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"

	"readingplan/internal/catalog"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file lives in cmd/migrate/, so repo root is ../..
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
	return filepath.Join(repoRoot, "db", "migrations")
}

func TestCollectMigrations_ParsesMigrationsDir(t *testing.T) {
	if _, err := goose.CollectMigrations(repoMigrationsDir(t), 0, goose.MaxVersion); err != nil {
		t.Fatalf("expected migrations to parse, got error: %v", err)
	}
}

func TestMigrations_SeedCanonicalCatalog(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, repoMigrationsDir(t)))

	books, err := catalog.NewSQLiteRepo(db).ListBooks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.Canonical(), books)

	require.NoError(t, goose.Down(db, repoMigrationsDir(t)))
	_, err = catalog.NewSQLiteRepo(db).ListBooks(context.Background())
	assert.Error(t, err)
}
