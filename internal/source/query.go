package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver

	"wheelview/internal/content"
)

// Query serves the first column of a SQL query run against DuckDB.
type Query struct {
	dsn     string
	query   string
	args    []any
	setup   []string
	threads int
	timeout time.Duration
	db      *sql.DB
}

// QueryOption configures a Query source.
type QueryOption func(*Query)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) QueryOption {
	return func(q *Query) {
		q.threads = n
	}
}

// WithTimeout bounds Connect and each Collect.
func WithTimeout(d time.Duration) QueryOption {
	return func(q *Query) {
		q.timeout = d
	}
}

// WithSetup runs statements once after connecting, e.g. to create and fill
// a table in an in-memory database.
func WithSetup(statements ...string) QueryOption {
	return func(q *Query) {
		q.setup = append(q.setup, statements...)
	}
}

// WithArgs binds query placeholders.
func WithArgs(args ...any) QueryOption {
	return func(q *Query) {
		q.args = args
	}
}

// NewQuery builds a query source. An empty dsn opens an in-memory database.
func NewQuery(dsn, query string, opts ...QueryOption) *Query {
	q := &Query{dsn: dsn, query: query}
	for _, opt := range opts {
		if opt != nil {
			opt(q)
		}
	}
	if q.dsn == "" {
		q.dsn = ":memory:"
	}
	return q
}

func (q *Query) Name() string { return "query" }

func (q *Query) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if q.timeout > 0 {
		return context.WithTimeout(ctx, q.timeout)
	}
	return ctx, func() {}
}

func (q *Query) Connect(ctx context.Context) error {
	if q.db != nil {
		return nil
	}
	db, err := sql.Open("duckdb", q.dsn)
	if err != nil {
		return fmt.Errorf("failed to open duckdb: %w", err)
	}

	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if q.threads > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA threads=%d", q.threads)); err != nil {
			_ = db.Close()
			return fmt.Errorf("setting threads: %w", err)
		}
	}
	for _, stmt := range q.setup {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return fmt.Errorf("setup: %w", err)
		}
	}
	q.db = db
	return nil
}

func (q *Query) Disconnect(ctx context.Context) error {
	if q.db == nil {
		return nil
	}
	err := q.db.Close()
	q.db = nil
	return err
}

// Collect runs the query and keeps the first column of every row. NULLs are
// dropped.
func (q *Query) Collect(ctx context.Context) (content.List, error) {
	if q.db == nil {
		return content.List{}, fmt.Errorf("database not initialized")
	}
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := q.db.QueryContext(ctx, q.query, q.args...)
	if err != nil {
		return content.List{}, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return content.List{}, fmt.Errorf("columns: %w", err)
	}
	if len(cols) == 0 {
		return content.List{}, nil
	}

	var values []any
	dest := make([]any, len(cols))
	for rows.Next() {
		var first any
		dest[0] = &first
		for i := 1; i < len(dest); i++ {
			dest[i] = new(any)
		}
		if err := rows.Scan(dest...); err != nil {
			return content.List{}, fmt.Errorf("scan: %w", err)
		}
		if b, ok := first.([]byte); ok {
			first = string(b)
		}
		values = append(values, first)
	}
	if err := rows.Err(); err != nil {
		return content.List{}, fmt.Errorf("rows: %w", err)
	}
	return content.FromValues(values), nil
}
