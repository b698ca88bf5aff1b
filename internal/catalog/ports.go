package catalog

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=catalog

// Repository is an external source of catalog rows, read once at startup.
type Repository interface {
	ListBooks(ctx context.Context) ([]Book, error)
}
