package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

// probePaths are polled by orchestrators and logged at debug level only.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/health": true}

// Logger writes one access log line per request. It must run inside
// RequestID and Auth so both identifiers are in the context.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ctx := r.Context()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("remote", clientIP(r)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			logger.LogAttrs(ctx, accessLevel(r.URL.Path, sw.status), "http.request", attrs...)
		})
	}
}

func accessLevel(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == http.StatusTooManyRequests:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
