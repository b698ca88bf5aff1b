package pdfexport

// Page holds the row numbers placed in each column of one page, top to bottom.
type Page struct {
	Columns [][]int
}

// Layout places rows column-major: down the first column, then the next, then onto a new page.
// firstRows is the column height on page one (which also carries the title block) and
// rowsPerColumn the height on every later page. Rows are never split.
func Layout(rows, columns, firstRows, rowsPerColumn int) []Page {
	if rows <= 0 {
		return []Page{{}}
	}
	columns = max(columns, 1)
	firstRows = max(firstRows, 1)
	rowsPerColumn = max(rowsPerColumn, 1)

	var pages []Page
	next := 0
	for next < rows {
		height := rowsPerColumn
		if len(pages) == 0 {
			height = firstRows
		}
		var page Page
		for c := 0; c < columns && next < rows; c++ {
			n := min(height, rows-next)
			col := make([]int, n)
			for i := range col {
				col[i] = next + i
			}
			page.Columns = append(page.Columns, col)
			next += n
		}
		pages = append(pages, page)
	}
	return pages
}
