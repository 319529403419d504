// Package audit keeps an append-only trail of MCP tool invocations.
// All operations are append-only; no updates or deletes are supported.
// Task 3.2: invocation audit trail.
package audit

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Invocation is one recorded tool call.
type Invocation struct {
	ID        string
	Tool      string
	Outcome   string // "success" | "error"
	ErrorKind string // "" on success
	Duration  time.Duration
	CreatedAt time.Time
}

// Recorder writes invocations into the invocation_log table.
type Recorder struct {
	db *sql.DB
}

// NewRecorder creates a Recorder on an already-migrated database.
func NewRecorder(db *sql.DB) *Recorder {
	return &Recorder{db: db}
}

// Record inserts one invocation row. This is the ONLY way to create rows —
// no updates, no deletes.
func (r *Recorder) Record(ctx context.Context, inv Invocation) error {
	if inv.ID == "" {
		inv.ID = newID()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invocation_log (id, tool, outcome, error_kind, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Tool, inv.Outcome, inv.ErrorKind,
		inv.Duration.Milliseconds(), inv.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// CountByTool returns how many invocations were recorded for a tool name.
func (r *Recorder) CountByTool(ctx context.Context, tool string) (int, error) {
	var count int
	row := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM invocation_log WHERE tool = ?", tool)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// newID returns a UUIDv7 — sortable by timestamp, which keeps the primary
// key index append-friendly.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
