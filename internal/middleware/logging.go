package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody はデバッグログに残すボディの上限 (バイト)
const maxLoggedBody = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名 (小文字)
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// sensitivePaths はボディを記録しないパス (パスワードを含む)
var sensitivePaths = []string{"/api/auth/"}

// statusRecorder は http.ResponseWriter をラップし、ステータスと書き込みサイズを記録します。
// capture が有効な場合のみボディを保持します。
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
	capture *bytes.Buffer
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.capture != nil && sr.capture.Len() < maxLoggedBody {
		sr.capture.Write(b)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.written += n
	return n, err
}

// LoggingMiddleware はリクエストIDつきのロガーをコンテキストに格納し、開始/終了ログを出力します。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestLogger := logger.With("req_id", chimiddleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug) && !isSensitivePath(r.URL.Path)
			var reqBody []byte
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			if debug {
				if r.Body != nil {
					reqBody, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
					r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), r.Body))
				}
				rec.capture = new(bytes.Buffer)
			}

			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			requestLogger.Log(r.Context(), level, "Request completed",
				"status", rec.status,
				"latency_ms", float64(time.Since(start).Nanoseconds())/1e6,
				"bytes_out", rec.written,
			)

			if debug {
				requestLogger.Debug("Request detail",
					"headers", formatHeaders(r.Header),
					"body", truncate(reqBody),
				)
				requestLogger.Debug("Response detail",
					"status", rec.status,
					"headers", formatHeaders(rec.Header()),
					"body", truncate(rec.capture.Bytes()),
				)
			}
		})
	}
}

// WithLogger はロガーをコンテキストに格納します
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func isSensitivePath(path string) bool {
	for _, p := range sensitivePaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングします
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
			continue
		}
		result[key] = strings.Join(values, ", ")
	}
	return result
}
