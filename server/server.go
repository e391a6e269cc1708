// Package server owns the API server lifecycle: shared application state,
// runtime route registration under a versioned path prefix, middleware
// layering, and listen-and-serve with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/querybase/servekit/config"
	"github.com/querybase/servekit/info"
	"github.com/querybase/servekit/pgpool"
	"github.com/querybase/servekit/router"
)

const defaultDrainTimeout = 10 * time.Second

// State is the shared application state cloned cheaply into every request's
// handler. It carries the read-only pool handle only; the HTTP layer cannot
// issue writes.
type State struct {
	DB pgpool.Reader
}

// HandlerFunc is any callable accepting the shared application state and
// answering a request. AddRoute registers these under the computed prefix.
type HandlerFunc func(state State, w http.ResponseWriter, r *http.Request)

// Option configures optional server collaborators.
type Option func(*Server)

type route struct {
	pattern string
	handler http.Handler
}

// Server accepts handler registrations at runtime, layers the middleware
// chain, and owns the listener lifecycle.
type Server struct {
	cfg          config.HTTPConfig
	state        State
	log          *slog.Logger
	routes       []route
	infoHandler  *info.InfoHandler
	routerOpts   []router.Option
	drainTimeout time.Duration

	mu   sync.Mutex
	addr string
}

// New builds the initial application state and a route table holding the
// single fixed health-check route. Registration stays open until Init.
func New(cfg config.HTTPConfig, db pgpool.Reader, opts ...Option) *Server {
	s := &Server{
		cfg:          cfg,
		state:        State{DB: db},
		log:          slog.Default(),
		drainTimeout: defaultDrainTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	// The health route answers regardless of pool state; liveness must not
	// depend on the backing store.
	s.routes = append(s.routes, route{
		pattern: "GET /health",
		handler: s.instrument("GET /health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("OK"))
		})),
	})

	return s
}

// WithLogger injects the structured logger used for lifecycle and routing
// records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithInfoHandler mounts the operational endpoints (status, healthz,
// readyz, version, openapi.json) unprefixed next to the health check.
func WithInfoHandler(ih *info.InfoHandler) Option {
	return func(s *Server) {
		s.infoHandler = ih
	}
}

// WithRouterOptions forwards additional options to the middleware chain,
// e.g. an OpenAPI document or extra middlewares.
func WithRouterOptions(opts ...router.Option) Option {
	return func(s *Server) {
		s.routerOpts = append(s.routerOpts, opts...)
	}
}

// WithDrainTimeout bounds how long shutdown waits for in-flight requests.
func WithDrainTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.drainTimeout = d
		}
	}
}

// Prefix returns the {path}/{version} segment prepended to every
// registered route except the fixed operational endpoints.
func (s *Server) Prefix() string {
	return strings.TrimSuffix(s.cfg.Path, "/") + "/" + s.cfg.Version
}

// AddRoute registers a GET handler under {path}/{version}/{suffix}. It may
// be called any number of times before Init; registrations accumulate and
// their order does not affect the final route set.
func (s *Server) AddRoute(suffix string, handler HandlerFunc) {
	routePath := s.Prefix() + "/" + strings.TrimPrefix(suffix, "/")
	pattern := "GET " + routePath

	s.routes = append(s.routes, route{
		pattern: pattern,
		handler: s.instrument(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(s.state, w, r)
		})),
	})

	s.log.Info("route added", "route", routePath)
}

// instrument records the matched pattern on the request span before the
// handler runs.
func (s *Server) instrument(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.SpanFromContext(r.Context()).SetPattern(pattern)
		next.ServeHTTP(w, r)
	})
}

// Addr returns the bound listen address once Init has bound the listener,
// or the empty string before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *Server) setAddr(addr net.Addr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addr = addr.String()
}

// buildHandler assembles the route table and layers the middleware chain:
// tracing span, error observability, CORS (when enabled), timeout, request
// logging.
func (s *Server) buildHandler() http.Handler {
	mux := http.NewServeMux()
	for _, rt := range s.routes {
		mux.Handle(rt.pattern, rt.handler)
	}
	if s.infoHandler != nil {
		mux.HandleFunc("GET /status", s.infoHandler.GetStatus)
		mux.HandleFunc("GET /healthz", s.infoHandler.GetHealthz)
		mux.HandleFunc("GET /readyz", s.infoHandler.GetReadyz)
		mux.HandleFunc("GET /version", s.infoHandler.GetVersion)
		mux.HandleFunc("GET /openapi.json", s.infoHandler.GetOpenAPIJSON)
	}

	opts := []router.Option{
		router.WithLogger(s.log),
		router.WithConfigMutator(func(cfg *router.Config) {
			cfg.QuietdownRoutes = append(cfg.QuietdownRoutes, "/health", "/healthz", "/readyz")
			if s.cfg.CORS.Enabled {
				cfg.CORS = router.CORSConfig{
					Origins:          s.cfg.CORS.Origins,
					Methods:          s.cfg.CORS.Methods,
					Headers:          s.cfg.CORS.Headers,
					AllowCredentials: s.cfg.CORS.AllowCredentials,
				}
			}
		}),
	}
	if !s.cfg.CORS.Enabled {
		opts = append(opts, router.WithoutCORSMiddleware())
	}
	opts = append(opts, s.routerOpts...)

	return router.Wrap(mux, opts...)
}

// Init closes route registration, binds the listener, and serves until the
// context is cancelled. A bind failure is returned immediately and is fatal
// to the caller; there is no retry at this layer. On cancellation the
// listener stops accepting, in-flight requests drain within the configured
// timeout, and Init returns nil.
func (s *Server) Init(ctx context.Context) error {
	handler := s.buildHandler()

	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.cfg.Address, err)
	}
	s.setAddr(listener.Addr())

	s.log.Info("API server listening", "address", "http://"+s.Addr())

	srv := &http.Server{Handler: handler}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("signal received, starting graceful shutdown")

	drainCtx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := srv.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.log.Info("API server stopped")
	return nil
}
