package responder

import (
	"log/slog"
)

const jsonContentType = "application/json"

// ErrorClassifierFunc inspects an error and returns the HTTP status that
// should be used for the response. The boolean indicates whether the error
// was classified and prevents the generic internal server handler from
// running.
type ErrorClassifierFunc func(err error) (status int, handled bool)

// ResponderOption follows the functional options pattern used by
// NewResponder to configure optional collaborators.
type ResponderOption func(*Responder)

// Responder centralises JSON rendering and conversion of handler errors into
// the uniform envelope. It deliberately does not log server faults itself;
// those are attached to the request and logged once by the observability
// middleware.
type Responder struct {
	log             *slog.Logger
	errorClassifier ErrorClassifierFunc
}

// NewResponder constructs a Responder backed by the global slog logger. Use
// ResponderOption functions to override specific behaviours.
func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{
		log: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// WithLogger injects a custom slog logger for client-fault diagnostics.
func WithLogger(logger *slog.Logger) ResponderOption {
	return func(r *Responder) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithErrorClassifier installs a classifier used by HandleError to derive
// the HTTP status code from returned errors.
func WithErrorClassifier(classifier ErrorClassifierFunc) ResponderOption {
	return func(r *Responder) {
		r.errorClassifier = classifier
	}
}

// Logger returns the slog logger used internally by the responder.
func (r *Responder) Logger() *slog.Logger {
	return r.logger()
}

func (r *Responder) logger() *slog.Logger {
	if r == nil || r.log == nil {
		return slog.Default()
	}
	return r.log
}

func (r *Responder) classifyError(err error) (int, bool) {
	if r.errorClassifier == nil {
		return 0, false
	}
	return r.errorClassifier(err)
}
