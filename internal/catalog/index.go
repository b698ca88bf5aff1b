package catalog

import (
	"fmt"
)

// Index is the flattened, read-only chapter sequence derived from a catalog.
// It is built once at startup and shared by every request.
type Index struct {
	books    []Book
	chapters []ChapterRef
	offsets  []int // offsets[i] is the position of book i's first chapter
	byName   map[string]int
}

// NewIndex flattens books into one ChapterRef per chapter, in catalog then chapter order.
func NewIndex(books []Book) *Index {
	idx := &Index{
		books:   make([]Book, len(books)),
		offsets: make([]int, len(books)+1),
		byName:  make(map[string]int, len(books)),
	}
	copy(idx.books, books)

	total := 0
	for _, b := range books {
		total += b.Chapters
	}
	idx.chapters = make([]ChapterRef, 0, total)

	for i, b := range books {
		idx.offsets[i] = len(idx.chapters)
		if _, dup := idx.byName[b.Name]; !dup {
			idx.byName[b.Name] = i
		}
		for ch := 1; ch <= b.Chapters; ch++ {
			idx.chapters = append(idx.chapters, ChapterRef{Book: b.Name, BookIndex: i, Chapter: ch})
		}
	}
	idx.offsets[len(books)] = len(idx.chapters)

	return idx
}

// Books returns the catalog in canonical order.
func (x *Index) Books() []Book {
	return x.books
}

// Chapters returns every chapter in the catalog. The slice must not be modified.
func (x *Index) Chapters() []ChapterRef {
	return x.chapters
}

func (x *Index) TotalChapters() int {
	return len(x.chapters)
}

// First returns the first book of the catalog, or the zero Book for an empty catalog.
func (x *Index) First() Book {
	if len(x.books) == 0 {
		return Book{}
	}
	return x.books[0]
}

// Last returns the last book of the catalog, or the zero Book for an empty catalog.
func (x *Index) Last() Book {
	if len(x.books) == 0 {
		return Book{}
	}
	return x.books[len(x.books)-1]
}

// Lookup returns the catalog position of name. Matching is exact and case-sensitive.
func (x *Index) Lookup(name string) (int, bool) {
	i, ok := x.byName[name]
	return i, ok
}

// Select returns the chapters of every book from startName through endName inclusive.
// The returned chapters alias the index.
func (x *Index) Select(startName, endName string) (Selection, error) {
	start, ok := x.Lookup(startName)
	if !ok {
		return Selection{}, fmt.Errorf("%w: unknown start book %q", ErrInvalidBook, startName)
	}
	end, ok := x.Lookup(endName)
	if !ok {
		return Selection{}, fmt.Errorf("%w: unknown end book %q", ErrInvalidBook, endName)
	}
	if end < start {
		return Selection{}, fmt.Errorf("%w: %s comes before %s", ErrBookOrder, endName, startName)
	}

	lo, hi := x.offsets[start], x.offsets[end+1]
	return Selection{
		StartBook: start,
		EndBook:   end,
		Chapters:  x.chapters[lo:hi:hi],
	}, nil
}
