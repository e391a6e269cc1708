package responder

import (
	"context"
	"net/http"
	"sync"
)

type captureKey struct{}

// capture holds at most one AppError per request. The observability
// middleware installs it before the handler runs and inspects it afterwards,
// so every handler failure is logged exactly once.
type capture struct {
	mu  sync.Mutex
	err *AppError
}

func (c *capture) set(err *AppError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = err
	}
}

func (c *capture) get() *AppError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// NewCaptureContext returns a context carrying an empty error slot for the
// current request.
func NewCaptureContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, captureKey{}, &capture{})
}

// Attach records the error in the request's capture slot, if one is present.
// Only the first error per request is kept.
func Attach(req *http.Request, err *AppError) {
	if req == nil || err == nil {
		return
	}
	if c, ok := req.Context().Value(captureKey{}).(*capture); ok {
		c.set(err)
	}
}

// CapturedError returns the error recorded for the request, or nil.
func CapturedError(ctx context.Context) *AppError {
	if ctx == nil {
		return nil
	}
	if c, ok := ctx.Value(captureKey{}).(*capture); ok {
		return c.get()
	}
	return nil
}
