// Package pdfexport lays a reading schedule out as a multi-column A4 checklist.
package pdfexport

import (
	"fmt"
	"io"

	"readingplan/internal/plan"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
)

const (
	margin      = 12.0
	gutter      = 6.0
	rowHeight   = 6.0
	titleHeight = 30.0
	boxSize     = 3.2
	dateWidth   = 24.0
	timeWidth   = 14.0
	fontFamily  = "Helvetica"
	baseFont    = 8.5
	minFont     = 6.0
)

// Options controls the document layout.
type Options struct {
	Columns int
	Title   string
}

func (o Options) withDefaults() Options {
	if o.Columns <= 0 {
		o.Columns = 3
	}
	if o.Title == "" {
		o.Title = "Bible Reading Plan"
	}
	return o
}

// Render writes s as a PDF document to w.
func Render(w io.Writer, s plan.Schedule, opts Options) error {
	opts = opts.withDefaults()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(opts.Title, true)
	pdf.SetCreator("readingplan", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	usable := pageH - 2*margin
	colW := (pageW - 2*margin - float64(opts.Columns-1)*gutter) / float64(opts.Columns)
	firstRows := int((usable - titleHeight) / rowHeight)
	rows := int(usable / rowHeight)

	for p, page := range Layout(len(s.Entries), opts.Columns, firstRows, rows) {
		pdf.AddPage()
		top := margin
		if p == 0 {
			writeTitle(pdf, tr, s, opts.Title)
			top += titleHeight
		}
		for c, col := range page.Columns {
			x := margin + float64(c)*(colW+gutter)
			for i, row := range col {
				writeRow(pdf, tr, s.Entries[row], x, top+float64(i)*rowHeight, colW)
			}
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

func writeTitle(pdf *fpdf.Fpdf, tr func(string) string, s plan.Schedule, title string) {
	pdf.SetXY(margin, margin)
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 5.5, tr(fmt.Sprintf("%s — %s",
		s.Range.Start.Format("January 2, 2006"), s.Range.End.Format("January 2, 2006"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5.5, tr(fmt.Sprintf("%s through %s", s.Request.StartBook, s.Request.EndBook)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5.5, fmt.Sprintf("%s chapters over %s days",
		humanize.Comma(int64(s.SelectedChapters())), humanize.Comma(int64(s.TotalDays()))), "", 1, "L", false, 0, "")
}

func writeRow(pdf *fpdf.Fpdf, tr func(string) string, e plan.Entry, x, y, width float64) {
	pdf.SetDrawColor(120, 120, 120)
	pdf.Rect(x, y+(rowHeight-boxSize)/2, boxSize, boxSize, "D")

	pdf.SetFont(fontFamily, "", baseFont)
	pdf.SetXY(x+boxSize+1.5, y)
	pdf.CellFormat(dateWidth, rowHeight, e.Date.Format("Mon Jan 2"), "", 0, "L", false, 0, "")

	readingW := width - boxSize - 1.5 - dateWidth - timeWidth
	reading := tr(e.Reading())
	if e.Empty() {
		pdf.SetTextColor(150, 150, 150)
	}
	fitFont(pdf, reading, readingW)
	pdf.CellFormat(readingW, rowHeight, reading, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont(fontFamily, "I", baseFont-1)
	minutes := ""
	if e.Minutes > 0 {
		minutes = fmt.Sprintf("%d min", e.Minutes)
	}
	pdf.CellFormat(timeWidth, rowHeight, minutes, "", 0, "R", false, 0, "")
}

// fitFont shrinks the current font until text fits in width, down to minFont.
func fitFont(pdf *fpdf.Fpdf, text string, width float64) {
	size := baseFont
	for size > minFont && pdf.GetStringWidth(text) > width {
		size -= 0.5
		pdf.SetFontSize(size)
	}
}
