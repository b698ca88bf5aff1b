// Package plan turns a date range and a run of chapters into a day-by-day reading schedule.
package plan

import (
	"errors"
	"time"

	"readingplan/internal/catalog"
)

// DateLayout is the calendar date format accepted and produced by the planner.
const DateLayout = "2006-01-02"

// MaxDays bounds a single schedule to one century of days.
const MaxDays = 36525

var (
	// ErrInvalidDate is returned when a date string is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrDateOrder is returned when the end date precedes the start date.
	ErrDateOrder = errors.New("end date is before start date")
	// ErrRangeTooLong is returned when the date range exceeds MaxDays.
	ErrRangeTooLong = errors.New("date range too long")
)

// Request holds the four raw inputs of a schedule build.
type Request struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartBook string `json:"start_book"`
	EndBook   string `json:"end_book"`
}

// Entry is one day of a schedule. Start and End are nil on a day without reading.
type Entry struct {
	Date     time.Time
	Start    *catalog.ChapterRef
	End      *catalog.ChapterRef
	Chapters int
	Minutes  int
}

// Empty reports whether no chapters are assigned to the day.
func (e Entry) Empty() bool {
	return e.Start == nil || e.End == nil
}

// Reading returns the formatted chapter range, or NoReading for an empty day.
func (e Entry) Reading() string {
	if s, ok := FormatRange(e.Start, e.End); ok {
		return s
	}
	return NoReading
}

// Schedule is the full plan for one request. It is never persisted.
type Schedule struct {
	Request   Request
	Range     DateRange
	Selection catalog.Selection
	Entries   []Entry
}

func (s Schedule) TotalDays() int {
	return len(s.Entries)
}

func (s Schedule) SelectedChapters() int {
	return s.Selection.Count()
}

// Stats are the summary numbers shown alongside a schedule.
type Stats struct {
	TotalChapters    int `json:"total_chapters"`
	SelectedChapters int `json:"selected_chapters"`
	TotalDays        int `json:"total_days"`
}
