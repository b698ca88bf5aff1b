package plan

import (
	"errors"
	"strings"
	"time"

	"readingplan/internal/catalog"
)

// defaultSpan is how far past today a blank end date reaches.
const defaultSpan = 365

// Service builds schedules against a shared, read-only chapter index.
type Service struct {
	index *catalog.Index
	now   func() time.Time
}

type Option func(*Service)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(index *catalog.Index, opts ...Option) *Service {
	s := &Service{index: index, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index returns the chapter index the service plans against.
func (s *Service) Index() *catalog.Index {
	return s.index
}

// Defaults returns the request a blank form starts with.
func (s *Service) Defaults() Request {
	today := truncateDay(s.now())
	return Request{
		StartDate: today.Format(DateLayout),
		EndDate:   today.AddDate(0, 0, defaultSpan).Format(DateLayout),
		StartBook: s.index.First().Name,
		EndBook:   s.index.Last().Name,
	}
}

// Normalize fills blank fields of req with their defaults. Non-blank fields are kept verbatim.
func (s *Service) Normalize(req Request) Request {
	def := s.Defaults()
	if strings.TrimSpace(req.StartDate) == "" {
		req.StartDate = def.StartDate
	}
	if strings.TrimSpace(req.EndDate) == "" {
		req.EndDate = def.EndDate
	}
	if req.StartBook == "" {
		req.StartBook = def.StartBook
	}
	if req.EndBook == "" {
		req.EndBook = def.EndBook
	}
	return req
}

// Build validates req and allocates its chapters across its days.
// Dates are checked before books and the first failure is returned.
func (s *Service) Build(req Request) (Schedule, error) {
	req = s.Normalize(req)

	start, err := ParseDate(strings.TrimSpace(req.StartDate))
	if err != nil {
		return Schedule{}, err
	}
	end, err := ParseDate(strings.TrimSpace(req.EndDate))
	if err != nil {
		return Schedule{}, err
	}
	dates, err := NewDateRange(start, end)
	if err != nil {
		return Schedule{}, err
	}

	sel, err := s.index.Select(req.StartBook, req.EndBook)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{
		Request:   req,
		Range:     dates,
		Selection: sel,
		Entries:   Allocate(dates, sel.Chapters),
	}, nil
}

// Stats summarises sched against the whole catalog.
func (s *Service) Stats(sched Schedule) Stats {
	return Stats{
		TotalChapters:    s.index.TotalChapters(),
		SelectedChapters: sched.SelectedChapters(),
		TotalDays:        sched.TotalDays(),
	}
}

// IsValidationError reports whether err was caused by the caller's input.
func IsValidationError(err error) bool {
	for _, target := range []error{ErrInvalidDate, ErrDateOrder, ErrRangeTooLong, catalog.ErrInvalidBook, catalog.ErrBookOrder} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
