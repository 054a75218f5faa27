package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const DefaultResultsDSN = "file::memory:?cache=shared"

// Open connects to the results database and makes sure its schema exists.
// A single connection is kept so that in-memory databases are not lost
// between pooled connections.
func Open(ctx context.Context, dsn string) (*sql.DB, *ResultsDB, error) {
	if dsn == "" {
		dsn = DefaultResultsDSN
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open results db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("ping results db: %w", err)
	}

	results, err := NewResultsDB(ctx, conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	return conn, results, nil
}
