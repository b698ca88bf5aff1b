package plan

import (
	"fmt"
	"time"
)

// DateRange is an inclusive span of calendar dates at UTC midnight.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidDate, s)
	}
	return t, nil
}

// NewDateRange validates that end is not before start and the span fits in MaxDays.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start, end = truncateDay(start), truncateDay(end)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: %s is before %s", ErrDateOrder, end.Format(DateLayout), start.Format(DateLayout))
	}
	r := DateRange{Start: start, End: end}
	if r.Days() > MaxDays {
		return DateRange{}, fmt.Errorf("%w: %d days exceeds the limit of %d", ErrRangeTooLong, r.Days(), MaxDays)
	}
	return r, nil
}

// Days returns the number of dates in the range, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Day returns the date at offset d from the start.
func (r DateRange) Day(d int) time.Time {
	return r.Start.AddDate(0, 0, d)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
