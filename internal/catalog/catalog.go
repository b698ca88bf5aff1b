package catalog

import (
	"errors"
)

var (
	// ErrInvalidBook is returned when a book name does not match any catalog entry.
	ErrInvalidBook = errors.New("invalid book")
	// ErrBookOrder is returned when the end book precedes the start book.
	ErrBookOrder = errors.New("end book comes before start book")
	// ErrInvalidCatalog is returned when externally supplied catalog data is unusable.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Book is one entry of the catalog, in canonical order.
type Book struct {
	Name     string `json:"name"`
	Chapters int    `json:"chapters"`
}

// ChapterRef identifies a single chapter and the catalog position of its book.
type ChapterRef struct {
	Book      string `json:"book"`
	BookIndex int    `json:"book_index"`
	Chapter   int    `json:"chapter"`
}

// Selection is the contiguous run of chapters spanning StartBook..EndBook inclusive.
type Selection struct {
	StartBook int
	EndBook   int
	Chapters  []ChapterRef
}

// Count returns the number of selected chapters.
func (s Selection) Count() int {
	return len(s.Chapters)
}
