package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/profile"
	"github.com/inward-labs/inward/internal/resolve"
)

// ErrNoProfile is returned when a user has not completed onboarding.
var ErrNoProfile = errors.New("no identity profile")

// WriteProfileSnapshot writes a finished identity profile across the profile
// tables in one transaction. The record is all-or-nothing: a failure on any
// child table rolls the whole snapshot back.
// Tables: identity_profiles, profile_traits, profile_archetype_scores,
// profile_voice, profile_selections.
func (s *Store) WriteProfileSnapshot(ctx context.Context, rec profile.Record) (uuid.UUID, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// 1. Insert profile header. A rerun of onboarding replaces the
	// previous snapshot for the user.
	if _, err := tx.Exec(ctx, `
		DELETE FROM identity_profiles WHERE user_id = $1`, rec.UserID); err != nil {
		return uuid.Nil, fmt.Errorf("clear previous profile: %w", err)
	}

	profileID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO identity_profiles (id, user_id, display_name, archetype_primary, archetype_secondary, blend_name, future_self, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		profileID, rec.UserID, rec.DisplayName, rec.Blend.Primary, rec.Blend.Secondary, rec.Blend.DisplayName, rec.FutureSelf,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert profile: %w", err)
	}

	// 2. Insert trait scores, catalog order for stable reads.
	for _, key := range catalog.TraitKeys() {
		_, err = tx.Exec(ctx, `
			INSERT INTO profile_traits (id, profile_id, trait_key, score)
			VALUES ($1, $2, $3, $4)`,
			uuid.New(), profileID, string(key), rec.Traits[key],
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert trait %s: %w", key, err)
		}
	}

	// 3. Insert archetype scores.
	for _, def := range archetype.Definitions {
		_, err = tx.Exec(ctx, `
			INSERT INTO profile_archetype_scores (id, profile_id, archetype, score)
			VALUES ($1, $2, $3, $4)`,
			uuid.New(), profileID, string(def.Name), rec.Blend.Scores[def.Name],
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert archetype score %s: %w", def.Name, err)
		}
	}

	// 4. Insert voice profile.
	phrases, err := json.Marshal(rec.Voice.ExamplePhrases)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal example phrases: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO profile_voice (id, profile_id, tone, motivation_style, example_phrases)
		VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), profileID, rec.Voice.Tone, rec.Voice.MotivationStyle, phrases,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert voice: %w", err)
	}

	// 5. Insert value and inspiration selections, position-ordered.
	for i, id := range rec.SelectedValueIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO profile_selections (id, profile_id, kind, item_id, position)
			VALUES ($1, $2, 'value', $3, $4)`,
			uuid.New(), profileID, id, i,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert value selection: %w", err)
		}
	}
	for i, id := range rec.SelectedInspirationIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO profile_selections (id, profile_id, kind, item_id, position)
			VALUES ($1, $2, 'inspiration', $3, $4)`,
			uuid.New(), profileID, id, i,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert inspiration selection: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}

	return profileID, nil
}

// GetProfile reassembles the stored snapshot for a user.
func (s *Store) GetProfile(ctx context.Context, userID string) (*profile.Record, error) {
	var profileID uuid.UUID
	rec := profile.Record{UserID: userID}
	var primary, secondary string

	row := s.pool.QueryRow(ctx, `
		SELECT id, display_name, archetype_primary, archetype_secondary, blend_name, future_self, created_at
		FROM identity_profiles
		WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&profileID, &rec.DisplayName, &primary, &secondary, &rec.Blend.DisplayName, &rec.FutureSelf, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	rec.Blend.Primary = archetype.Name(primary)
	rec.Blend.Secondary = archetype.Name(secondary)

	// Traits.
	rec.Traits = make(resolve.UserTraits)
	rows, err := s.pool.Query(ctx, `
		SELECT trait_key, score FROM profile_traits WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch traits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var score float64
		if err := rows.Scan(&key, &score); err != nil {
			return nil, fmt.Errorf("scan trait: %w", err)
		}
		rec.Traits[catalog.TraitKey(key)] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trait rows: %w", err)
	}

	// Archetype scores.
	rec.Blend.Scores = make(map[archetype.Name]float64)
	scoreRows, err := s.pool.Query(ctx, `
		SELECT archetype, score FROM profile_archetype_scores WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch archetype scores: %w", err)
	}
	defer scoreRows.Close()
	for scoreRows.Next() {
		var name string
		var score float64
		if err := scoreRows.Scan(&name, &score); err != nil {
			return nil, fmt.Errorf("scan archetype score: %w", err)
		}
		rec.Blend.Scores[archetype.Name(name)] = score
	}
	if err := scoreRows.Err(); err != nil {
		return nil, fmt.Errorf("archetype score rows: %w", err)
	}

	// Voice.
	var phrasesJSON []byte
	voiceRow := s.pool.QueryRow(ctx, `
		SELECT tone, motivation_style, example_phrases FROM profile_voice WHERE profile_id = $1`,
		profileID,
	)
	if err := voiceRow.Scan(&rec.Voice.Tone, &rec.Voice.MotivationStyle, &phrasesJSON); err != nil {
		return nil, fmt.Errorf("fetch voice: %w", err)
	}
	if err := json.Unmarshal(phrasesJSON, &rec.Voice.ExamplePhrases); err != nil {
		return nil, fmt.Errorf("parse example phrases: %w", err)
	}

	// Selections, in selection order.
	selRows, err := s.pool.Query(ctx, `
		SELECT kind, item_id FROM profile_selections WHERE profile_id = $1 ORDER BY kind, position`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch selections: %w", err)
	}
	defer selRows.Close()
	for selRows.Next() {
		var kind, itemID string
		if err := selRows.Scan(&kind, &itemID); err != nil {
			return nil, fmt.Errorf("scan selection: %w", err)
		}
		switch kind {
		case "value":
			rec.SelectedValueIDs = append(rec.SelectedValueIDs, itemID)
		case "inspiration":
			rec.SelectedInspirationIDs = append(rec.SelectedInspirationIDs, itemID)
		}
	}
	if err := selRows.Err(); err != nil {
		return nil, fmt.Errorf("selection rows: %w", err)
	}

	return &rec, nil
}
