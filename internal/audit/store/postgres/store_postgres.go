package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"cardcheck/internal/audit"
)

// Schema is the DDL for the audit table. Deployments run it through their
// migration tooling; tests apply it directly.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id               UUID PRIMARY KEY,
	occurred_at      TIMESTAMPTZ NOT NULL,
	action           TEXT NOT NULL,
	card_fingerprint TEXT NOT NULL,
	issuer           TEXT NOT NULL DEFAULT '',
	outcome          TEXT NOT NULL DEFAULT '',
	request_id       TEXT NOT NULL DEFAULT '',
	client_ip        TEXT NOT NULL DEFAULT '',
	user_agent       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS audit_events_fingerprint_idx
	ON audit_events (card_fingerprint, occurred_at);
`

// PostgresStore persists audit events in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed audit store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Open connects to Postgres using a lib/pq DSN and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events
			(id, occurred_at, action, card_fingerprint, issuer, outcome, request_id, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID, event.Timestamp, event.Action, event.CardFingerprint,
		event.Issuer, event.Outcome, event.RequestID, event.ClientIP, event.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByFingerprint(ctx context.Context, fingerprint string) ([]audit.Event, error) {
	query := `
		SELECT id, occurred_at, action, card_fingerprint, issuer, outcome, request_id, client_ip, user_agent
		FROM audit_events
		WHERE card_fingerprint = $1
		ORDER BY occurred_at
	`
	rows, err := s.db.QueryContext(ctx, query, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Action, &e.CardFingerprint,
			&e.Issuer, &e.Outcome, &e.RequestID, &e.ClientIP, &e.UserAgent); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
