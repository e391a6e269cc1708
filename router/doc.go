// Package router wraps http.ServeMux with request tracing, centralised
// handler-error logging, CORS, timeouts, and optional OpenAPI validation.
// Middlewares compose via functional options; see ExampleNew.
package router
