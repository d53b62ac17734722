//go:build integration

package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/profile"
	"github.com/inward-labs/inward/internal/resolve"
	"github.com/inward-labs/inward/internal/snapshot"
	"github.com/inward-labs/inward/internal/voice"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func testRecord(userID string) profile.Record {
	traits := make(resolve.UserTraits)
	for _, key := range catalog.TraitKeys() {
		traits[key] = 75
	}
	return profile.Record{
		UserID:      userID,
		DisplayName: "Integration Tester",
		Traits:      traits,
		Blend: archetype.Blend{
			Scores: map[archetype.Name]float64{
				archetype.Sage:      82,
				archetype.Explorer:  71,
				archetype.Architect: 65,
				archetype.Anchor:    58,
				archetype.Visionary: 69,
				archetype.Captain:   60,
			},
			Primary:     archetype.Sage,
			Secondary:   archetype.Explorer,
			DisplayName: "The Curious Scholar",
		},
		Voice: voice.Profile{
			Tone:            "calm and reflective",
			MotivationStyle: "appeals to understanding",
			ExamplePhrases:  []string{"Worth thinking through.", "What does the evidence say?", "One step at a time."},
		},
		SelectedValueIDs:       []string{"curiosity", "learning", "honesty", "peace", "mastery"},
		SelectedInspirationIDs: []string{"marie_curie", "carl_sagan", "ada_lovelace", "richard_feynman", "jane_goodall"},
		FutureSelf:             "Someone who reads more than they scroll.",
		CreatedAt:              time.Now().UTC(),
	}
}

func TestIntegration_WriteAndGetProfile(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	userID := "integration-test-" + uuid.New().String()[:8]

	rec := testRecord(userID)
	id, err := s.WriteProfileSnapshot(ctx, rec)
	if err != nil {
		t.Fatalf("WriteProfileSnapshot failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected non-nil profile ID")
	}
	t.Cleanup(func() {
		s.pool.Exec(ctx, "DELETE FROM identity_profiles WHERE user_id = $1", userID)
	})

	got, err := s.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Blend.Primary != archetype.Sage {
		t.Errorf("expected primary Sage, got %q", got.Blend.Primary)
	}
	if got.Blend.DisplayName != "The Curious Scholar" {
		t.Errorf("expected blend name, got %q", got.Blend.DisplayName)
	}
	if len(got.Traits) != len(catalog.Traits) {
		t.Errorf("expected %d traits, got %d", len(catalog.Traits), len(got.Traits))
	}
	if got.Traits[catalog.TraitHeadHeart] != 75 {
		t.Errorf("expected trait score 75, got %f", got.Traits[catalog.TraitHeadHeart])
	}
	if len(got.Voice.ExamplePhrases) != 3 {
		t.Errorf("expected 3 phrases, got %d", len(got.Voice.ExamplePhrases))
	}
	if len(got.SelectedValueIDs) != 5 {
		t.Errorf("expected 5 values, got %d", len(got.SelectedValueIDs))
	}
	if got.SelectedValueIDs[0] != "curiosity" {
		t.Errorf("expected selection order preserved, got %q first", got.SelectedValueIDs[0])
	}

	// Rerunning onboarding replaces the snapshot rather than stacking.
	rec.Blend.DisplayName = "The Curious Scholar v2"
	if _, err := s.WriteProfileSnapshot(ctx, rec); err != nil {
		t.Fatalf("second WriteProfileSnapshot failed: %v", err)
	}
	got, err = s.GetProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetProfile after rewrite failed: %v", err)
	}
	if got.Blend.DisplayName != "The Curious Scholar v2" {
		t.Errorf("expected rewritten blend name, got %q", got.Blend.DisplayName)
	}
}

func TestIntegration_GetProfileMissing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetProfile(ctx, "no-such-user-"+uuid.New().String()[:8])
	if !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestIntegration_UpsertContextSnapshot(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	userID := "integration-test-" + uuid.New().String()[:8]

	snap := snapshot.Snapshot{
		UserID:     userID,
		CapturedAt: time.Now().UTC().Truncate(time.Second),
		Fitness:    &snapshot.FitnessSummary{Steps: 8200, SleepHours: 7.5},
		Tasks:      &snapshot.TaskSummary{DueToday: 3, Overdue: 1},
	}
	if err := s.UpsertContextSnapshot(ctx, snap); err != nil {
		t.Fatalf("UpsertContextSnapshot (create) failed: %v", err)
	}
	t.Cleanup(func() {
		s.pool.Exec(ctx, "DELETE FROM context_snapshots WHERE user_id = $1", userID)
	})

	got, err := s.GetContextSnapshot(ctx, userID)
	if err != nil {
		t.Fatalf("GetContextSnapshot failed: %v", err)
	}
	if got.Fitness == nil || got.Fitness.Steps != 8200 {
		t.Errorf("expected fitness steps 8200, got %+v", got.Fitness)
	}
	if got.Music != nil {
		t.Error("expected nil music section")
	}

	// Upsert replaces in place.
	snap.Fitness.Steps = 9000
	if err := s.UpsertContextSnapshot(ctx, snap); err != nil {
		t.Fatalf("UpsertContextSnapshot (update) failed: %v", err)
	}
	got, err = s.GetContextSnapshot(ctx, userID)
	if err != nil {
		t.Fatalf("GetContextSnapshot after update failed: %v", err)
	}
	if got.Fitness.Steps != 9000 {
		t.Errorf("expected updated steps 9000, got %d", got.Fitness.Steps)
	}
}

func TestIntegration_GetContextSnapshotMissing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.GetContextSnapshot(ctx, "no-such-user-"+uuid.New().String()[:8])
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}
