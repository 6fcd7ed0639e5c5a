// Package middleware содержит HTTP middleware сервиса инвойсов.
package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

// WriteHeader убирает Content-Length: после сжатия тело меньше,
// и исходное значение заставило бы клиента ждать недостающие байты.
func (w *gzipResponseWriter) WriteHeader(status int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.Header().Del("Content-Length")
	return w.gz.Write(b)
}

type gzipRequestReader struct {
	gr   *gzip.Reader
	body io.ReadCloser
}

func (r *gzipRequestReader) Read(p []byte) (int, error) {
	return r.gr.Read(p)
}

// Close закрывает и gzip-читатель, и исходное тело запроса.
func (r *gzipRequestReader) Close() error {
	if err := r.gr.Close(); err != nil {
		_ = r.body.Close()
		return err
	}
	return r.body.Close()
}

// GzipMiddleware распаковывает сжатые тела запросов и сжимает ответы,
// если клиент поддерживает gzip.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gr, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
				return
			}
			r.Body = &gzipRequestReader{gr: gr, body: r.Body}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzip.NewWriter(w)
		defer gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
	})
}
