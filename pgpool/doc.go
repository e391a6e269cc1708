// Package pgpool wraps a pgx connection pool behind two capability
// interfaces: Reader exposes query operations only, Store adds mutation.
// Both are served by the same underlying pool; handing a public-facing API
// the Reader interface makes writes a compile-time impossibility rather
// than a runtime check.
//
// Pools are produced by a Builder that fixes sizing defaults. Create claims
// the connection string exclusively for this process; Open attaches without
// a claim, matching the read-oriented role of the HTTP layer.
package pgpool
