package http

import (
	"cek-cuaca/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response or a transport failure
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// zapLogger writes HTTP exchanges to the application logger.
type zapLogger struct {
	maxBodyLength int
}

// NewZapLogger returns an HTTPLogger backed by pkg/log. Response bodies are truncated to maxBodyLength bytes.
func NewZapLogger(maxBodyLength int) HTTPLogger {
	return &zapLogger{maxBodyLength: maxBodyLength}
}

func (l *zapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("http request",
		zap.String("method", method),
		zap.String("url", url))
}

func (l *zapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64) {
	log.Debug("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", l.truncate(responseBody)))
}

func (l *zapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("http request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", l.truncate(responseBody)),
		zap.Error(err))
}

func (l *zapLogger) truncate(body string) string {
	if l.maxBodyLength <= 0 || len(body) <= l.maxBodyLength {
		return body
	}
	return body[:l.maxBodyLength] + "..."
}
