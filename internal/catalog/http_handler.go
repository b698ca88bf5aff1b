package catalog

import (
	"net/http"

	"readingplan/internal/httpx"
)

type HTTPHandler struct {
	index *Index
}

func NewHTTPHandler(index *Index) *HTTPHandler {
	return &HTTPHandler{index: index}
}

// List handles GET /api/books
// @Summary List catalog books
// @Description Books in canonical order with their chapter counts
// @Tags catalog
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /api/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.index.Books()
	httpx.JSONSuccessWithRequest(r, w, books, map[string]interface{}{
		"total_books":    len(books),
		"total_chapters": h.index.TotalChapters(),
	})
}
