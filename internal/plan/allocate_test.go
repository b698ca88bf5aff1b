package plan

import (
	"testing"
	"time"

	"readingplan/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genesisExodus = []catalog.Book{{Name: "Genesis", Chapters: 50}, {Name: "Exodus", Chapters: 40}}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	s, err := ParseDate(start)
	require.NoError(t, err)
	e, err := ParseDate(end)
	require.NoError(t, err)
	r, err := NewDateRange(s, e)
	require.NoError(t, err)
	return r
}

func chapterRun(n int) []catalog.ChapterRef {
	return catalog.NewIndex([]catalog.Book{{Name: "Psalms", Chapters: n}}).Chapters()
}

// spanOf returns the index window of e inside chapters, or (-1, -1) for an empty day.
func spanOf(chapters []catalog.ChapterRef, e Entry) (int, int) {
	if e.Empty() {
		return -1, -1
	}
	return e.Start.Chapter - chapters[0].Chapter, e.End.Chapter - chapters[0].Chapter
}

func TestAllocate_EvenSplit(t *testing.T) {
	chapters := catalog.NewIndex(genesisExodus).Chapters()
	entries := Allocate(mustRange(t, "2024-01-01", "2024-01-03"), chapters)

	require.Len(t, entries, 3)
	for d, e := range entries {
		assert.Equal(t, 30, e.Chapters)
		assert.Same(t, &chapters[d*30], e.Start)
		assert.Same(t, &chapters[d*30+29], e.End)
	}
	assert.Equal(t, "Genesis 1-30", entries[0].Reading())
	assert.Equal(t, "Genesis 31 - Exodus 10", entries[1].Reading())
	assert.Equal(t, "Exodus 11-40", entries[2].Reading())
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), entries[2].Date)
}

func TestAllocate_SingleDay(t *testing.T) {
	chapters := catalog.NewIndex(genesisExodus).Chapters()
	entries := Allocate(mustRange(t, "2024-06-01", "2024-06-01"), chapters)

	require.Len(t, entries, 1)
	assert.Equal(t, 90, entries[0].Chapters)
	assert.Equal(t, "Genesis 1 - Exodus 40", entries[0].Reading())
}

func TestAllocate_MoreDaysThanChapters(t *testing.T) {
	chapters := chapterRun(5)
	entries := Allocate(mustRange(t, "2024-01-01", "2024-01-10"), chapters)

	require.Len(t, entries, 10)
	var pattern []bool
	for _, e := range entries {
		pattern = append(pattern, e.Empty())
		if !e.Empty() {
			assert.Equal(t, 1, e.Chapters)
		}
	}
	// floor(d*5/10) with hi = floor((d+1)*5/10)-1 puts readings on odd days
	assert.Equal(t, []bool{true, false, true, false, true, false, true, false, true, false}, pattern)
	assert.Equal(t, NoReading, entries[0].Reading())
	assert.Equal(t, 0, entries[0].Minutes)
	assert.Equal(t, "Psalms 1", entries[1].Reading())
}

func TestAllocate_NoChapters(t *testing.T) {
	entries := Allocate(mustRange(t, "2024-01-01", "2024-01-04"), nil)

	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.True(t, e.Empty())
	}
}

func TestAllocate_Properties(t *testing.T) {
	for _, n := range []int{1, 2, 7, 90, 150, 1189} {
		chapters := chapterRun(n)
		for _, days := range []int{1, 2, 3, 6, 31, 90, 365, 400, 1500} {
			start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
			r, err := NewDateRange(start, start.AddDate(0, 0, days-1))
			require.NoError(t, err)
			entries := Allocate(r, chapters)

			require.Len(t, entries, days, "n=%d days=%d", n, days)

			next := 0
			minSize, maxSize := n, 0
			empty := 0
			for d, e := range entries {
				assert.Equal(t, r.Day(d), e.Date)
				minSize = min(minSize, e.Chapters)
				maxSize = max(maxSize, e.Chapters)
				lo, hi := spanOf(chapters, e)
				if lo < 0 {
					empty++
					continue
				}
				assert.Equal(t, next, lo, "n=%d days=%d day=%d not contiguous", n, days, d)
				assert.Equal(t, hi-lo+1, e.Chapters)
				next = hi + 1
			}
			assert.Equal(t, n, next, "n=%d days=%d every chapter assigned once", n, days)
			assert.LessOrEqual(t, maxSize-minSize, 1, "n=%d days=%d", n, days)
			if days <= n {
				assert.Zero(t, empty, "n=%d days=%d", n, days)
			} else {
				assert.Equal(t, days-n, empty, "n=%d days=%d", n, days)
			}
		}
	}
}

func TestAllocate_DoesNotMutate(t *testing.T) {
	chapters := chapterRun(12)
	before := append([]catalog.ChapterRef(nil), chapters...)

	Allocate(mustRange(t, "2024-01-01", "2024-01-05"), chapters)

	assert.Equal(t, before, chapters)
}

func TestEstimateMinutes(t *testing.T) {
	assert.Equal(t, 0, EstimateMinutes(0))
	assert.Equal(t, 5, EstimateMinutes(1))
	assert.Equal(t, 8, EstimateMinutes(2))
	assert.Equal(t, 120, EstimateMinutes(30))
}
