package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	HTTPRequest(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports every request to rec, labelled by
// the matched ServeMux pattern.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			rec.HTTPRequest(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
