package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Service loads the book catalog from a repository, or the built-in canon when none is configured.
type Service struct {
	repo Repository
}

// NewService creates a catalog service. repo may be nil.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load returns the catalog rows after validating them.
func (s *Service) Load(ctx context.Context) ([]Book, error) {
	if s.repo == nil {
		return Canonical(), nil
	}
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if err := Validate(books); err != nil {
		return nil, err
	}
	return books, nil
}

// LoadIndex loads the catalog and builds its chapter index.
func (s *Service) LoadIndex(ctx context.Context) (*Index, error) {
	books, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewIndex(books), nil
}

// Validate checks that books is non-empty, every name is unique and non-blank,
// and every book has at least one chapter.
func Validate(books []Book) error {
	if len(books) == 0 {
		return fmt.Errorf("%w: no books", ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("%w: book at position %d has no name", ErrInvalidCatalog, i)
		}
		if b.Chapters < 1 {
			return fmt.Errorf("%w: %s has %d chapters", ErrInvalidCatalog, b.Name, b.Chapters)
		}
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: duplicate book %s", ErrInvalidCatalog, b.Name)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}
