package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/inward-labs/inward/internal/snapshot"
)

// ErrNoSnapshot is returned when a user has no stored context snapshot yet.
var ErrNoSnapshot = errors.New("no context snapshot")

// UpsertContextSnapshot stores the latest provider context for a user. One
// row per user; a newer snapshot replaces the old payload in place.
func (s *Store) UpsertContextSnapshot(ctx context.Context, snap snapshot.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO context_snapshots (user_id, payload, captured_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET payload = EXCLUDED.payload, captured_at = EXCLUDED.captured_at`,
		snap.UserID, payload, snap.CapturedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// GetContextSnapshot fetches the latest stored context for a user, or
// ErrNoSnapshot if none has arrived yet.
func (s *Store) GetContextSnapshot(ctx context.Context, userID string) (*snapshot.Snapshot, error) {
	var payload []byte
	row := s.pool.QueryRow(ctx, `
		SELECT payload FROM context_snapshots WHERE user_id = $1`, userID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}
