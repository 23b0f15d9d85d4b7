// Package history keeps a SQLite log of committed placements, grouped by
// the session that made them.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on open.
const schema = `
CREATE TABLE IF NOT EXISTS placements (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    session     TEXT NOT NULL,
    predecessor TEXT NOT NULL,
    node        TEXT NOT NULL,
    edges       TEXT NOT NULL DEFAULT '',
    placed_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS placements_session ON placements(session, id);
`

// Entry is one committed placement. Predecessor is the node the placement
// was requested after; Edges are the predecessors actually recorded, which
// differ when a joint route applied.
type Entry struct {
	ID          int64
	Session     string
	Predecessor string
	Node        string
	Edges       []string
	PlacedAt    time.Time
}

// Session summarizes one session's placements.
type Session struct {
	ID         string
	Placements int
	First      time.Time
	Last       time.Time
}

// Store is a placement log backed by a local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and creates the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// SQLite allows one writer; a single connection keeps PRAGMAs in effect.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends a placement and returns its id. A zero PlacedAt is
// stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.PlacedAt.IsZero() {
		e.PlacedAt = time.Now().UTC()
	}
	const q = `
		INSERT INTO placements (session, predecessor, node, edges, placed_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q,
		e.Session, e.Predecessor, e.Node, strings.Join(e.Edges, ","), e.PlacedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("history: record %s after %s: %w", e.Node, e.Predecessor, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("history: record id: %w", err)
	}
	return id, nil
}

// List returns placements in commit order. An empty session lists every
// session's placements.
func (s *Store) List(ctx context.Context, session string) ([]Entry, error) {
	q := `SELECT id, session, predecessor, node, edges, placed_at FROM placements`
	var args []any
	if session != "" {
		q += ` WHERE session = ?`
		args = append(args, session)
	}
	q += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: list placements: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e     Entry
			edges string
		)
		if err := rows.Scan(&e.ID, &e.Session, &e.Predecessor, &e.Node, &edges, &e.PlacedAt); err != nil {
			return nil, fmt.Errorf("history: scan placement: %w", err)
		}
		if edges != "" {
			e.Edges = strings.Split(edges, ",")
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate placements: %w", err)
	}
	return out, nil
}

// Sessions returns every session that recorded a placement, oldest first.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	const q = `
		SELECT session, COUNT(*), MIN(id)
		FROM placements
		GROUP BY session
		ORDER BY MIN(id)`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("history: list sessions: %w", err)
	}

	var out []Session
	for rows.Next() {
		var (
			sess    Session
			firstID int64
		)
		if err := rows.Scan(&sess.ID, &sess.Placements, &firstID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("history: scan session: %w", err)
		}
		out = append(out, sess)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate sessions: %w", err)
	}

	// Timestamps are read back through the driver's time scanning rather
	// than from the aggregate, which SQLite returns as text.
	for i := range out {
		entries, err := s.List(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			out[i].First = entries[0].PlacedAt
			out[i].Last = entries[len(entries)-1].PlacedAt
		}
	}
	return out, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
