package plan

import (
	"fmt"

	"readingplan/internal/catalog"
)

// NoReading is shown for a day that has no chapters assigned.
const NoReading = "—"

// FormatRange renders a chapter span such as "Genesis 1-3" or "Genesis 50 - Exodus 2".
// ok is false when either end is missing.
func FormatRange(start, end *catalog.ChapterRef) (s string, ok bool) {
	if start == nil || end == nil {
		return "", false
	}
	if start.Book == end.Book {
		if start.Chapter == end.Chapter {
			return fmt.Sprintf("%s %d", start.Book, start.Chapter), true
		}
		return fmt.Sprintf("%s %d-%d", start.Book, start.Chapter, end.Chapter), true
	}
	return fmt.Sprintf("%s %d - %s %d", start.Book, start.Chapter, end.Book, end.Chapter), true
}
