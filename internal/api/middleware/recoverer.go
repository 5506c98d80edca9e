package middleware

import (
	"net/http"
)

// PanicHandler renders a response for a recovered panic value.
type PanicHandler func(w http.ResponseWriter, r *http.Request, recovered any)

// Recoverer turns panics in later handlers into a response written by
// onPanic. http.ErrAbortHandler is re-raised so the server can abort the
// connection.
func Recoverer(onPanic PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				onPanic(w, r, rec)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
