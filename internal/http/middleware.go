package httpapi

import (
	"log"
	"net/http"
	"time"
)

// accessRecorder wraps a ResponseWriter so the access log can report what
// the handler actually sent. A handler that writes a body without calling
// WriteHeader still counts as a 200.
type accessRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (a *accessRecorder) WriteHeader(code int) {
	a.status = code
	a.ResponseWriter.WriteHeader(code)
}

func (a *accessRecorder) Write(p []byte) (int, error) {
	if a.status == 0 {
		a.status = http.StatusOK
	}
	n, err := a.ResponseWriter.Write(p)
	a.size += n
	return n, err
}

// RequestLogger logs one line per request: method, path, status, response
// size and elapsed time.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %dB %s", r.Method, r.URL.Path, status, rec.size, time.Since(start))
	})
}
