// Command plan builds a reading plan from the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"readingplan/internal/catalog"
	"readingplan/internal/plan"
	"readingplan/internal/platform/pdfexport"
)

// Flags shared by every subcommand. Blank values take the same defaults as the web form.
type RequestFlags struct {
	StartDate string `name:"start-date" help:"First day of the plan (YYYY-MM-DD). Defaults to today."`
	EndDate   string `name:"end-date" help:"Last day of the plan (YYYY-MM-DD). Defaults to a year from today."`
	StartBook string `name:"start-book" help:"First book to read. Defaults to the first book of the canon."`
	EndBook   string `name:"end-book" help:"Last book to read. Defaults to the last book of the canon."`
}

// SourceFlags choose where the book catalog comes from.
type SourceFlags struct {
	SQLite string `name:"sqlite" type:"path" help:"Read the catalog from this SQLite database (as migrated by cmd/migrate) instead of the built-in canon."`
}

// loadIndex reads the catalog once and releases the database before planning.
func (f SourceFlags) loadIndex(ctx context.Context) (*catalog.Index, error) {
	if f.SQLite == "" {
		return catalog.NewIndex(catalog.Canonical()), nil
	}
	db, err := catalog.OpenSQLite(f.SQLite)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", f.SQLite, err)
	}
	defer db.Close()
	return catalog.NewService(catalog.NewSQLiteRepo(db)).LoadIndex(ctx)
}

func (f SourceFlags) service(ctx context.Context) (*plan.Service, error) {
	index, err := f.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	return plan.NewService(index), nil
}

func (f RequestFlags) request() plan.Request {
	return plan.Request{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		StartBook: f.StartBook,
		EndBook:   f.EndBook,
	}
}

var CLI struct {
	Show  ShowCmd  `cmd:"" help:"Print the schedule."`
	Pdf   PdfCmd   `cmd:"" help:"Write the schedule as a PDF."`
	Books BooksCmd `cmd:"" help:"List the books of the canon."`
}

type ShowCmd struct {
	RequestFlags `embed:""`
	SourceFlags  `embed:""`
	SkipEmpty    bool `help:"Omit days without reading."`
}

func (c *ShowCmd) Run() error {
	svc, err := c.service(context.Background())
	if err != nil {
		return err
	}
	sched, err := svc.Build(c.request())
	if err != nil {
		return err
	}
	renderText(os.Stdout, sched, svc.Stats(sched), c.SkipEmpty)
	return nil
}

type PdfCmd struct {
	RequestFlags `embed:""`
	SourceFlags  `embed:""`
	Out          string `help:"Output file." type:"path" default:"reading-plan.pdf"`
	Columns      int    `help:"Columns per page." default:"3"`
	Title        string `help:"Document title." default:"Bible Reading Plan"`
}

func (c *PdfCmd) Run() error {
	if c.Columns < 1 || c.Columns > 6 {
		return fmt.Errorf("columns must be between 1 and 6, got %d", c.Columns)
	}
	svc, err := c.service(context.Background())
	if err != nil {
		return err
	}
	sched, err := svc.Build(c.request())
	if err != nil {
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Out, err)
	}
	if err := pdfexport.Render(f, sched, pdfexport.Options{Columns: c.Columns, Title: c.Title}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s days)\n", c.Out, humanize.Comma(int64(sched.TotalDays())))
	return nil
}

type BooksCmd struct {
	SourceFlags `embed:""`
}

func (c *BooksCmd) Run() error {
	index, err := c.loadIndex(context.Background())
	if err != nil {
		return err
	}
	renderBooks(os.Stdout, index)
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Width(16)
	readStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(36)
	minStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(8)
)

func renderText(w io.Writer, s plan.Schedule, st plan.Stats, skipEmpty bool) {
	req := s.Request
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s to %s, %s to %s",
		req.StartBook, req.EndBook, req.StartDate, req.EndDate)))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%s of %s chapters over %s days",
		humanize.Comma(int64(st.SelectedChapters)),
		humanize.Comma(int64(st.TotalChapters)),
		humanize.Comma(int64(st.TotalDays)))))
	fmt.Fprintln(w)

	for _, e := range s.Entries {
		if skipEmpty && e.Empty() {
			continue
		}
		minutes := ""
		if e.Minutes > 0 {
			minutes = fmt.Sprintf("%d min", e.Minutes)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			dateStyle.Render(e.Date.Format("Mon 2006-01-02")),
			readStyle.Render(e.Reading()),
			minStyle.Render(minutes),
		)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

func renderBooks(w io.Writer, idx *catalog.Index) {
	for i, b := range idx.Books() {
		fmt.Fprintf(w, "%2d  %s %s\n", i+1, readStyle.Width(20).Render(b.Name), dimStyle.Render(fmt.Sprint(b.Chapters)))
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d books, %s chapters",
		len(idx.Books()), humanize.Comma(int64(idx.TotalChapters())))))
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("plan"),
		kong.Description("Bible reading plan generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
