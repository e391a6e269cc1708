// Package info layers operational endpoints on top of the responder:
// status, liveness, readiness, build information, and the raw OpenAPI
// document. The server mounts these unprefixed next to the health check.
package info
