package plan

import (
	"readingplan/internal/catalog"
)

const (
	minutesPerChapter = 4
	minMinutesPerDay  = 5
)

// Allocate spreads chapters over every day of r using a cumulative-floor partition.
// Day d receives chapters[d*n/days : (d+1)*n/days], so each chapter lands on exactly one day,
// order is preserved, and span sizes differ by at most one. chapters is never modified.
func Allocate(r DateRange, chapters []catalog.ChapterRef) []Entry {
	days := r.Days()
	n := len(chapters)
	entries := make([]Entry, days)

	for d := 0; d < days; d++ {
		lo := d * n / days
		hi := (d+1)*n/days - 1

		e := Entry{Date: r.Day(d)}
		if hi >= lo {
			e.Start = &chapters[lo]
			e.End = &chapters[hi]
			e.Chapters = hi - lo + 1
		}
		e.Minutes = EstimateMinutes(e.Chapters)
		entries[d] = e
	}
	return entries
}

// EstimateMinutes is the suggested reading time for a day with the given chapter count.
func EstimateMinutes(chapters int) int {
	if chapters <= 0 {
		return 0
	}
	return max(chapters*minutesPerChapter, minMinutesPerDay)
}
