package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nineylabs/smart-server/internal/metrics"
)

// Metrics instruments every request with the Prometheus collectors:
// request counter, latency histogram and in-flight gauge.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(1)
		defer metrics.TrackActiveRequest(-1)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		metrics.RecordRequest(r.Method, r.URL.Path, strconv.Itoa(sw.Status()), time.Since(start))
	})
}
