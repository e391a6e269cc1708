// Package servekit is a minimal extensible HTTP service framework fronting
// a read-oriented Postgres store. It exposes versioned, path-prefixed query
// endpoints over a pooled connection while centralising request tracing,
// structured error capture, CORS policy, and graceful shutdown, so endpoint
// handlers stay free of boilerplate.
//
// # Packages
//
//   - server: shared application state, runtime route registration under
//     {path}/{version}/{suffix}, middleware layering, and the
//     listen/drain/stop lifecycle.
//   - router: the middleware chain itself: per-request tracing spans,
//     centralised handler-error logging, CORS, timeouts, request logging,
//     and optional OpenAPI validation.
//   - responder: the uniform error envelope ({"message": ...}), JSON body
//     decoding with decoder-faithful rejections, and trace IDs.
//   - pgpool: a builder-configured pgx pool behind read-only and full
//     capability interfaces with deterministic open/create semantics.
//   - probe: adapters that turn pool pings, database pings, or arbitrary
//     closures into readiness checks.
//   - info: operational endpoints (status, healthz, readyz, version,
//     openapi.json) layered on the responder.
//   - config: environment-driven configuration with .env support.
//   - logging: one-time process-wide slog setup.
//   - jsonutil: thin sonic wrappers for high-throughput encoding and
//     decoding.
//
// # Quick Start
//
//	cfg, _ := config.Load()
//	logger := logging.Init(cfg.Log)
//	db, err := pgpool.Open(ctx, cfg.DB.Path)
//	if err != nil {
//	    logger.Error("cannot open database", "error", err)
//	    os.Exit(1)
//	}
//
//	srv := server.New(cfg.HTTP, db, server.WithLogger(logger))
//	srv.AddRoute("widgets", listWidgets)
//	if err := srv.Init(ctx); err != nil {
//	    logger.Error("API server failed", "error", err)
//	}
//
// Handlers receive the shared state and use the responder for payloads and
// failures; any server fault they raise is logged exactly once by the
// observability middleware.
package servekit
