package http

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"readingplan/internal/catalog"
	"readingplan/internal/httpx"
	"readingplan/internal/plan"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

var viewFuncs = template.FuncMap{
	"comma": func(n int) string {
		return humanize.Comma(int64(n))
	},
}

var views = template.Must(template.New("").Funcs(viewFuncs).ParseFS(templatesFS, "templates/*.html"))

type pageView struct {
	Title   string
	Request plan.Request
	Books   []catalog.Book
	Error   string
	Stats   plan.Stats
	Rows    []rowView
	PDFLink string
}

type rowView struct {
	Day     int
	Date    string
	Reading string
	Minutes int
	Empty   bool
}

func newRows(s plan.Schedule) []rowView {
	rows := make([]rowView, len(s.Entries))
	for i, e := range s.Entries {
		rows[i] = rowView{
			Day:     i + 1,
			Date:    e.Date.Format("Mon, Jan 2, 2006"),
			Reading: e.Reading(),
			Minutes: e.Minutes,
			Empty:   e.Empty(),
		}
	}
	return rows
}

func queryOf(req plan.Request) url.Values {
	return url.Values{
		"start_date": {req.StartDate},
		"end_date":   {req.EndDate},
		"start_book": {req.StartBook},
		"end_book":   {req.EndBook},
	}
}

// render buffers the page so a failed template never sends a partial response.
func render(w http.ResponseWriter, r *http.Request, status int, view pageView) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, "index.html", view); err != nil {
		log.Printf("template render failed: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
