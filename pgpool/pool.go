package pgpool

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reader is the read-only capability over the pool. The HTTP layer depends
// on this interface only, so a public-facing read API cannot issue writes
// even if a handler is miscoded.
type Reader interface {
	// Query executes a query that returns rows, typically a SELECT.
	// The caller must close the returned Rows when done.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// Acquire borrows a connection from the pool. The caller must Release
	// it on every exit path; acquisition honours context cancellation.
	Acquire(ctx context.Context) (*pgxpool.Conn, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}

// Store is the full capability: everything Reader offers plus mutation.
type Store interface {
	Reader

	// Exec executes a statement that does not return rows.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// Begin starts a transaction. The caller must Commit or Rollback.
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Pool is the concrete implementation of both capability interfaces,
// backed by a single pgxpool.Pool shared across all request tasks.
// It intentionally wraps (does not embed) the pgx pool.
type Pool struct {
	pool      *pgxpool.Pool
	path      string
	exclusive bool
}

var (
	_ Reader = (*Pool)(nil)
	_ Store  = (*Pool)(nil)
)

func (p *Pool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return p.pool.Query(ctx, sql, args...)
}

func (p *Pool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return p.pool.QueryRow(ctx, sql, args...)
}

func (p *Pool) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	return p.pool.Acquire(ctx)
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, args...)
}

func (p *Pool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.pool.Begin(ctx)
}

// Stat returns a snapshot of pool statistics.
func (p *Pool) Stat() *pgxpool.Stat {
	return p.pool.Stat()
}

// Close releases all pool resources and, for exclusively created pools,
// surrenders the process-local claim. Call once during shutdown; requests
// in flight should have drained first.
func (p *Pool) Close() {
	if p.exclusive {
		releaseExclusive(p.path)
		p.exclusive = false
	}
	p.pool.Close()
}
