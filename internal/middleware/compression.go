package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressionMinSize is the smallest body, in bytes, worth gzipping.
// Responses below the threshold are sent unmodified.
const compressionMinSize = 1000

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// Compress gzips response bodies for clients that accept it. Output is
// buffered until it crosses compressionMinSize, so small payloads keep
// their exact bytes and Content-Length while larger ones switch to a
// pooled gzip writer.
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		cw := &compressWriter{ResponseWriter: w, status: http.StatusOK}
		defer cw.close()

		next.ServeHTTP(cw, r)
	})
}

type compressWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
	gz          *gzip.Writer
}

// WriteHeader records the status but defers sending it until the
// encoding is known.
func (w *compressWriter) WriteHeader(status int) {
	w.status = status
}

func (w *compressWriter) Write(b []byte) (int, error) {
	if w.gz != nil {
		return w.gz.Write(b)
	}

	w.buf.Write(b)
	if w.buf.Len() >= compressionMinSize {
		if err := w.startGzip(); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

// startGzip commits to gzip encoding and replays the buffered bytes
// through a pooled writer.
func (w *compressWriter) startGzip() error {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)
	w.wroteHeader = true

	gz := gzipWriterPool.Get().(*gzip.Writer)
	gz.Reset(w.ResponseWriter)
	w.gz = gz

	if w.buf.Len() > 0 {
		_, err := w.gz.Write(w.buf.Bytes())
		w.buf.Reset()
		return err
	}
	return nil
}

// close flushes the response: either finishes the gzip stream or, for
// bodies under the threshold, writes the buffered bytes untouched.
func (w *compressWriter) close() {
	if w.gz != nil {
		w.gz.Close()
		gzipWriterPool.Put(w.gz)
		w.gz = nil
		return
	}

	if !w.wroteHeader {
		w.ResponseWriter.WriteHeader(w.status)
		w.wroteHeader = true
	}
	if w.buf.Len() > 0 {
		w.ResponseWriter.Write(w.buf.Bytes())
	}
}
