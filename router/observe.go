package router

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/querybase/servekit/responder"
)

type spanKey struct{}

// Span is the ephemeral per-request tracing context. It is created when a
// request enters the pipeline and discarded when the response is emitted.
type Span struct {
	TraceID string
	Method  string
	URI     string

	mu      sync.Mutex
	pattern string
}

// SetPattern records the matched route pattern once dispatch has resolved
// it. The route table sets this when a registered handler is invoked.
func (s *Span) SetPattern(pattern string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pattern = pattern
}

// Pattern returns the matched route pattern, or the empty string when the
// request never reached a registered handler.
func (s *Span) Pattern() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pattern
}

// SpanFromContext returns the request span, or nil outside the pipeline.
func SpanFromContext(ctx context.Context) *Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanKey{}).(*Span)
	return span
}

// statusRecorder captures the status code written downstream so the span
// close record can include it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// TracingMiddleware opens a span for every request and logs its closure with
// the method, URI, matched route pattern, status, and duration. It does not
// log failures; the observability middleware owns those.
func TracingMiddleware(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := &Span{
				TraceID: responder.NewTraceID(),
				Method:  r.Method,
				URI:     r.URL.RequestURI(),
			}
			ctx := context.WithValue(r.Context(), spanKey{}, span)

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.LogAttrs(ctx, slog.LevelDebug, "request",
				slog.String("traceId", span.TraceID),
				slog.String("method", span.Method),
				slog.String("uri", span.URI),
				slog.String("matchedPath", span.Pattern()),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// ObservabilityMiddleware installs the per-request error slot before the
// handler runs and inspects it afterwards. Any attached server fault is
// logged exactly once; the response itself is never altered.
func ObservabilityMiddleware(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := responder.NewCaptureContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))

			appErr := responder.CapturedError(ctx)
			if appErr == nil || appErr.ClientFault() {
				return
			}

			attrs := []slog.Attr{
				slog.String("error", appErr.Error()),
				slog.Int("status", appErr.Status),
			}
			if span := SpanFromContext(ctx); span != nil {
				attrs = append(attrs,
					slog.String("traceId", span.TraceID),
					slog.String("method", span.Method),
					slog.String("uri", span.URI),
				)
			}
			logger.LogAttrs(ctx, slog.LevelError, "an unexpected error occurred inside a handler", attrs...)
		})
	}
}
