package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	ActorID    string          `json:"actorId"`
	EntityID   string          `json:"entityId,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

type Repo struct{ DB *pgxpool.Pool }

// EnsureSchema creates the audit table on startup; safe to run repeatedly.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admin_audit (
			event_id    UUID PRIMARY KEY,
			event_type  TEXT NOT NULL,
			actor_id    TEXT NOT NULL,
			entity_id   TEXT NOT NULL DEFAULT '',
			payload     JSONB,
			occurred_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (r *Repo) Insert(ctx context.Context, e Entry) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO admin_audit(event_id, event_type, actor_id, entity_id, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING
	`, e.EventID, e.EventType, e.ActorID, e.EntityID, []byte(e.Payload), e.OccurredAt)
	return err
}

func (r *Repo) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.Query(ctx, `
		SELECT event_id, event_type, actor_id, entity_id, payload, occurred_at
		FROM admin_audit ORDER BY occurred_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var payload []byte
		if err := rows.Scan(&e.EventID, &e.EventType, &e.ActorID, &e.EntityID, &payload, &e.OccurredAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		out = append(out, e)
	}
	return out, rows.Err()
}
