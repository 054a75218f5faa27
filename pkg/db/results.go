package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrNoResultsDB = errors.New("results database is not configured")

// RoundResult is one completed round of one browser session.
type RoundResult struct {
	SessionID   string
	Round       int
	Score       int
	Correct     int
	Total       int
	CompletedAt time.Time
}

// Log of completed rounds, kept in SQLite.
type ResultsDB struct {
	conn *sql.DB
}

const resultsSchema = `
	CREATE TABLE IF NOT EXISTS round_results (
		session_id   TEXT    NOT NULL,
		round        INTEGER NOT NULL,
		score        INTEGER NOT NULL,
		correct      INTEGER NOT NULL,
		total        INTEGER NOT NULL,
		completed_at INTEGER NOT NULL,
		PRIMARY KEY (session_id, round)
	);`

func NewResultsDB(ctx context.Context, db *sql.DB) (*ResultsDB, error) {
	if db == nil {
		return nil, ErrNoResultsDB
	}

	if _, err := db.ExecContext(ctx, resultsSchema); err != nil {
		return nil, fmt.Errorf("create round_results: %w", err)
	}

	return &ResultsDB{conn: db}, nil
}

// RecordRound stores r. Completing the same round again replaces the row.
func (rdb *ResultsDB) RecordRound(ctx context.Context, r RoundResult) error {

	qstring := `
		INSERT INTO round_results (session_id, round, score, correct, total, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id, round) DO UPDATE SET
			score = excluded.score,
			correct = excluded.correct,
			total = excluded.total,
			completed_at = excluded.completed_at;`

	_, err := rdb.conn.ExecContext(ctx, qstring,
		r.SessionID, r.Round, r.Score, r.Correct, r.Total, r.CompletedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("record round %d of %s: %w", r.Round, r.SessionID, err)
	}
	return nil
}

// ListRounds returns a session's rounds, oldest first.
func (rdb *ResultsDB) ListRounds(ctx context.Context, sessionID string) ([]RoundResult, error) {

	qstring := `
		SELECT session_id, round, score, correct, total, completed_at
		FROM round_results
		WHERE session_id == ?
		ORDER BY round;`

	stm, err := rdb.conn.PrepareContext(ctx, qstring)
	if err != nil {
		return nil, err
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]RoundResult, 0, 8)

	for rows.Next() {
		var (
			r  RoundResult
			ms int64
		)
		if err := rows.Scan(&r.SessionID, &r.Round, &r.Score, &r.Correct, &r.Total, &ms); err != nil {
			return nil, fmt.Errorf("scan round result: %w", err)
		}
		r.CompletedAt = time.UnixMilli(ms).UTC()
		results = append(results, r)
	}

	return results, rows.Err()
}

// BestScore is the highest score a session has finished a round with, or 0.
func (rdb *ResultsDB) BestScore(ctx context.Context, sessionID string) (int, error) {
	var best sql.NullInt64

	err := rdb.conn.QueryRowContext(ctx,
		`SELECT MAX(score) FROM round_results WHERE session_id == ?;`, sessionID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("best score of %s: %w", sessionID, err)
	}
	return int(best.Int64), nil
}

// ForgetSession drops every round of a session that has been swept.
func (rdb *ResultsDB) ForgetSession(ctx context.Context, sessionID string) error {
	_, err := rdb.conn.ExecContext(ctx, `DELETE FROM round_results WHERE session_id == ?;`, sessionID)
	if err != nil {
		return fmt.Errorf("forget session %s: %w", sessionID, err)
	}
	return nil
}
