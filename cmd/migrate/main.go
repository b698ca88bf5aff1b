package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
		target  = flag.String("target", "postgres", "Catalog database: postgres or sqlite")
	)
	flag.Parse()

	loadEnvFiles()

	db, closeDB, err := openTarget(context.Background(), *target)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB()

	dir := migrationsDir()

	switch *command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			log.Fatalf("Failed to rollback migrations: %v", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			log.Fatalf("Failed to check migration status: %v", err)
		}
	case "create":
		if *name == "" {
			log.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}
		fmt.Printf("Migration created: %s\n", *name)
	default:
		log.Fatalf("Unknown command: %s. Use: up, down, status, create", *command)
	}
}

// openTarget opens the catalog database and selects the matching goose dialect.
func openTarget(ctx context.Context, target string) (*sql.DB, func(), error) {
	switch target {
	case "postgres":
		pool, err := pgxpool.New(ctx, databaseDSN())
		if err != nil {
			return nil, nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		if err := goose.SetDialect("postgres"); err != nil {
			db.Close()
			pool.Close()
			return nil, nil, err
		}
		return db, func() { db.Close(); pool.Close() }, nil
	case "sqlite":
		path := sqlitePath()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, err
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, err
		}
		if err := goose.SetDialect("sqlite3"); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown target %q", target)
	}
}
