package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"readingplan/internal/catalog"
	"readingplan/internal/httpx"
	"readingplan/internal/plan"
	"readingplan/internal/platform/pdfexport"
)

const (
	defaultTitle    = "Bible Reading Plan"
	notFoundMessage = "The requested page was not found."
)

type PlanHandler struct {
	svc  *plan.Service
	opts pdfexport.Options
}

func NewPlanHandler(svc *plan.Service, opts pdfexport.Options) *PlanHandler {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	return &PlanHandler{svc: svc, opts: opts}
}

func requestFrom(r *http.Request) planQuery {
	q := r.URL.Query()
	return planQuery{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		StartBook: q.Get("start_book"),
		EndBook:   q.Get("end_book"),
	}
}

func (q planQuery) request() plan.Request {
	return plan.Request{StartDate: q.StartDate, EndDate: q.EndDate, StartBook: q.StartBook, EndBook: q.EndBook}
}

// build runs the planner and returns the request the form should echo back: the
// submitted values with blanks filled by defaults. The planner decides which input
// fails first; a shape violation on that input only sharpens the message.
func (h *PlanHandler) build(r *http.Request) (plan.Schedule, plan.Request, error) {
	q := requestFrom(r)
	req := h.svc.Normalize(q.request())
	s, err := h.svc.Build(req)
	if err != nil {
		return plan.Schedule{}, req, h.shapeFailure(q, req, err)
	}
	return s, req, nil
}

// shapeFailure replaces err with the shape message of the field that caused it, if
// that field also failed ValidateStruct. The sentinel is kept.
func (h *PlanHandler) shapeFailure(q planQuery, req plan.Request, err error) error {
	errs := ValidateStruct(q)
	if len(errs) == 0 {
		return err
	}

	var field string
	var sentinel error
	switch {
	case errors.Is(err, plan.ErrInvalidDate):
		field, sentinel = "start_date", plan.ErrInvalidDate
		if _, perr := plan.ParseDate(strings.TrimSpace(req.StartDate)); perr == nil {
			field = "end_date"
		}
	case errors.Is(err, catalog.ErrInvalidBook):
		field, sentinel = "start_book", catalog.ErrInvalidBook
		if _, ok := h.svc.Index().Lookup(req.StartBook); ok {
			field = "end_book"
		}
	default:
		return err
	}

	for _, e := range errs {
		if e.Field == field {
			return fmt.Errorf("%w: %s", sentinel, e.Message)
		}
	}
	return err
}

func (h *PlanHandler) page(req plan.Request) pageView {
	return pageView{
		Title:   h.opts.Title,
		Request: req,
		Books:   h.svc.Index().Books(),
	}
}

func (h *PlanHandler) renderFailure(w http.ResponseWriter, r *http.Request, req plan.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("plan build failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
	}
	view := h.page(req)
	view.Error = userMessage(err)
	render(w, r, status, view)
}

// Index handles GET /
// @Summary Reading plan form
// @Description Renders the form and the schedule for the submitted (or default) inputs
// @Tags plan
// @Produce html
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param start_book query string false "First book"
// @Param end_book query string false "Last book"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Router / [get]
func (h *PlanHandler) Index(w http.ResponseWriter, r *http.Request) {
	s, req, err := h.build(r)
	if err != nil {
		h.renderFailure(w, r, req, err)
		return
	}

	view := h.page(req)
	view.Stats = h.svc.Stats(s)
	view.Rows = newRows(s)
	view.PDFLink = "/plan.pdf?" + queryOf(req).Encode()
	render(w, r, http.StatusOK, view)
}

// PDF handles GET /plan.pdf
func (h *PlanHandler) PDF(w http.ResponseWriter, r *http.Request) {
	s, req, err := h.build(r)
	if err != nil {
		h.renderFailure(w, r, req, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFilename(s)))
	if err := pdfexport.Render(w, s, h.opts); err != nil {
		log.Printf("pdf render failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		w.Header().Del("Content-Disposition")
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not render the PDF", nil)
	}
}

// API handles GET /api/plan
// @Summary Reading plan as JSON
// @Tags plan
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/plan [get]
func (h *PlanHandler) API(w http.ResponseWriter, r *http.Request) {
	s, _, err := h.build(r)
	if err != nil {
		status := statusFor(err)
		code := "VALIDATION_ERROR"
		if status == http.StatusInternalServerError {
			code = "INTERNAL_ERROR"
		}
		httpx.JSONErrorWithRequest(r, w, status, code, userMessage(err), nil)
		return
	}

	httpx.JSONSuccessWithRequest(r, w, newScheduleResponse(s), map[string]interface{}{
		"total_chapters":    h.svc.Index().TotalChapters(),
		"selected_chapters": s.SelectedChapters(),
		"total_days":        s.TotalDays(),
	})
}

// NotFound renders the default form for any unmatched path.
func (h *PlanHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	view := h.page(h.svc.Defaults())
	view.Error = notFoundMessage
	render(w, r, http.StatusNotFound, view)
}

func statusFor(err error) int {
	if plan.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func userMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Something went wrong while building the plan."
	}
	return err.Error()
}

func pdfFilename(s plan.Schedule) string {
	return fmt.Sprintf("reading-plan-%s-to-%s.pdf",
		s.Range.Start.Format(plan.DateLayout), s.Range.End.Format(plan.DateLayout))
}

type entryResponse struct {
	Date     string              `json:"date"`
	Reading  string              `json:"reading"`
	Chapters int                 `json:"chapters"`
	Minutes  int                 `json:"minutes"`
	Start    *catalog.ChapterRef `json:"start,omitempty"`
	End      *catalog.ChapterRef `json:"end,omitempty"`
}

type scheduleResponse struct {
	Request plan.Request    `json:"request"`
	Entries []entryResponse `json:"entries"`
}

func newScheduleResponse(s plan.Schedule) scheduleResponse {
	entries := make([]entryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = entryResponse{
			Date:     e.Date.Format(plan.DateLayout),
			Reading:  e.Reading(),
			Chapters: e.Chapters,
			Minutes:  e.Minutes,
			Start:    e.Start,
			End:      e.End,
		}
	}
	return scheduleResponse{Request: s.Request, Entries: entries}
}
