package assessment

import (
	"errors"
	"testing"

	"github.com/inward-labs/inward/internal/catalog"
)

func TestRecordResponse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     catalog.TraitKey
		pole    Pole
		rating  int
		wantErr error
	}{
		{"valid left", catalog.TraitHeadHeart, PoleLeft, 3, nil},
		{"valid right", catalog.TraitHeadHeart, PoleRight, 5, nil},
		{"rating too low", catalog.TraitHeadHeart, PoleLeft, 0, ErrInvalidRating},
		{"rating too high", catalog.TraitHeadHeart, PoleLeft, 6, ErrInvalidRating},
		{"unknown trait", "mystery_trait", PoleLeft, 3, ErrUnknownTrait},
		{"bad pole", catalog.TraitHeadHeart, "middle", 3, ErrInvalidPole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector()
			err := c.RecordResponse(tt.key, tt.pole, tt.rating)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecordResponse_PolesAreIndependent(t *testing.T) {
	c := NewCollector()
	if err := c.RecordResponse(catalog.TraitDataGut, PoleLeft, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, _ := c.Response(catalog.TraitDataGut)
	if r.Left != 4 {
		t.Errorf("expected left rating 4, got %d", r.Left)
	}
	if r.Right != 0 {
		t.Errorf("right rating must stay unanswered, got %d", r.Right)
	}
}

func TestRecordResponse_OverwriteOnEdit(t *testing.T) {
	c := NewCollector()
	_ = c.RecordResponse(catalog.TraitDataGut, PoleLeft, 2)
	_ = c.RecordResponse(catalog.TraitDataGut, PoleLeft, 5)

	r, _ := c.Response(catalog.TraitDataGut)
	if r.Left != 5 {
		t.Errorf("expected edited rating 5, got %d", r.Left)
	}
}

func TestIsGroupComplete(t *testing.T) {
	c := NewCollector()
	group := catalog.Groups[0]

	if c.IsGroupComplete(group) {
		t.Error("empty collector must not report group complete")
	}

	for _, key := range group.Traits {
		_ = c.RecordResponse(key, PoleLeft, 3)
		_ = c.RecordResponse(key, PoleRight, 5)
	}
	if !c.IsGroupComplete(group) {
		t.Error("fully answered group must report complete")
	}

	// Knock out one pole: a half-answered trait blocks the group.
	half := group.Traits[2]
	r := c.responses[half]
	r.Right = 0
	c.responses[half] = r
	if c.IsGroupComplete(group) {
		t.Error("group with a half-answered trait must not report complete")
	}
}

func TestProgress(t *testing.T) {
	c := NewCollector()
	if got := c.Progress(); got != 0 {
		t.Errorf("expected 0%% at start, got %d", got)
	}

	// Answer 5 of 15 traits fully: 33%.
	for _, key := range catalog.TraitKeys()[:5] {
		_ = c.RecordResponse(key, PoleLeft, 3)
		_ = c.RecordResponse(key, PoleRight, 1)
	}
	if got := c.Progress(); got != 33 {
		t.Errorf("expected 33%%, got %d", got)
	}

	// A half-answered trait does not count.
	_ = c.RecordResponse(catalog.TraitKeys()[5], PoleLeft, 3)
	if got := c.Progress(); got != 33 {
		t.Errorf("half-answered trait must not move progress, got %d", got)
	}

	for _, key := range catalog.TraitKeys() {
		_ = c.RecordResponse(key, PoleLeft, 3)
		_ = c.RecordResponse(key, PoleRight, 1)
	}
	if got := c.Progress(); got != 100 {
		t.Errorf("expected 100%%, got %d", got)
	}
}

func TestResponses_ReturnsCopy(t *testing.T) {
	c := NewCollector()
	_ = c.RecordResponse(catalog.TraitHeadHeart, PoleLeft, 3)

	snapshot := c.Responses()
	r := snapshot[catalog.TraitHeadHeart]
	r.Left = 99
	snapshot[catalog.TraitHeadHeart] = r

	orig, _ := c.Response(catalog.TraitHeadHeart)
	if orig.Left != 3 {
		t.Errorf("mutating the snapshot must not touch the collector, got %d", orig.Left)
	}
}
