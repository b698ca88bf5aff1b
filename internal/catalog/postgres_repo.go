package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listBooksSQL = `
	SELECT name, chapters
	FROM bible_books
	ORDER BY position`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ListBooks(ctx context.Context) ([]Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, listBooksSQL)
	if err != nil {
		return nil, fmt.Errorf("query bible_books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Book, error) {
		var b Book
		err := row.Scan(&b.Name, &b.Chapters)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan bible_books: %w", err)
	}
	return books, nil
}
