package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
	"strings"
)

const panicMessage = "Something went wrong while building the plan."

// RecoveryMiddleware turns a handler panic into a 500. API paths get the JSON error
// envelope, page and PDF paths a plain text body. Nothing is written if the handler
// already sent its header.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("panic recovered: request_id=%s method=%s path=%s query=%q error=%v stack=%s",
				RequestIDFrom(r), r.Method, r.URL.Path, r.URL.RawQuery, rec, debug.Stack())

			if rw, ok := w.(*responseWriter); ok && rw.wroteHeader() {
				return
			}
			if strings.HasPrefix(r.URL.Path, "/api/") {
				JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", panicMessage, nil)
				return
			}
			http.Error(w, panicMessage, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
