// Package probe converts database, HTTP, and custom ping functions into
// readiness/liveness helpers. See ExampleNewPingProbe and
// ExampleNewHTTPProbe for quick-start patterns.
package probe
