package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"
)

// FixedClock returns a clock stuck at 09:00 UTC on the given day.
func FixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// PlanQuery builds the query string of a plan form submission. Blank values are dropped.
func PlanQuery(startDate, endDate, startBook, endBook string) url.Values {
	q := url.Values{}
	for k, v := range map[string]string{
		"start_date": startDate,
		"end_date":   endDate,
		"start_book": startBook,
		"end_book":   endBook,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, query url.Values) *http.Request {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return httptest.NewRequest(method, path, nil)
}

// Serve runs r through h and returns the recorder.
func Serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes a JSON envelope response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Meta returns the meta object of a decoded envelope, or nil.
func (r RecordResponse) Meta() map[string]interface{} {
	m, _ := r.Body["meta"].(map[string]interface{})
	return m
}

// ErrorCode returns error.code of a decoded error envelope, or "".
func (r RecordResponse) ErrorCode() string {
	e, _ := r.Body["error"].(map[string]interface{})
	code, _ := e["code"].(string)
	return code
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}
