package resolve

import (
	"errors"
	"reflect"
	"testing"

	"github.com/inward-labs/inward/internal/catalog"
)

// completeResponses returns a full response set with a clear right lean on
// every trait, suitable as a baseline to mutate in individual tests.
func completeResponses() map[catalog.TraitKey]RawResponse {
	responses := make(map[catalog.TraitKey]RawResponse)
	for _, key := range catalog.TraitKeys() {
		responses[key] = RawResponse{Left: 2, Right: 4}
	}
	return responses
}

func TestScore_LinearMapping(t *testing.T) {
	tests := []struct {
		name  string
		left  int
		right int
		want  float64
	}{
		{"strong left", 5, 1, 0},
		{"moderate left", 5, 2, 12.5},
		{"lean left", 4, 2, 25},
		{"lean right", 2, 4, 75},
		{"moderate right", 2, 5, 87.5},
		{"strong right", 1, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(RawResponse{Left: tt.left, Right: tt.right})
			if got != tt.want {
				t.Errorf("Score(%d,%d) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestAmbiguous(t *testing.T) {
	tests := []struct {
		name  string
		left  int
		right int
		want  bool
	}{
		{"equal low", 1, 1, true},
		{"equal mid", 3, 3, true},
		{"equal high", 5, 5, true},
		{"off by one", 3, 4, true},
		{"clear endorsement", 2, 4, false},
		{"extreme split", 1, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ambiguous(RawResponse{Left: tt.left, Right: tt.right})
			if got != tt.want {
				t.Errorf("Ambiguous(%d,%d) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestAmbiguousTraits_FlagsOnlyTies(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitHeadHeart] = RawResponse{Left: 3, Right: 3}
	responses[catalog.TraitDataGut] = RawResponse{Left: 5, Right: 4}

	flagged, err := AmbiguousTraits(responses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []catalog.TraitKey{catalog.TraitHeadHeart, catalog.TraitDataGut}
	if !reflect.DeepEqual(flagged, want) {
		t.Errorf("flagged = %v, want %v (catalog order)", flagged, want)
	}
}

func TestAmbiguousTraits_IncompleteBlocks(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitPrivateOpen] = RawResponse{Left: 4, Right: 0}

	if _, err := AmbiguousTraits(responses); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestResolve_StrongLeftScenario(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitIntrovertExtrovert] = RawResponse{Left: 5, Right: 1}

	traits, err := Resolve(responses, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := traits[catalog.TraitIntrovertExtrovert]; got != 0 {
		t.Errorf("expected strong-left score 0, got %v", got)
	}
}

func TestResolve_OverrideAppliedVerbatim(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitCautiousBold] = RawResponse{Left: 3, Right: 3}

	traits, err := Resolve(responses, map[catalog.TraitKey]int{catalog.TraitCautiousBold: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := traits[catalog.TraitCautiousBold]; got != 70 {
		t.Errorf("expected override 70 verbatim, got %v", got)
	}
}

func TestResolve_OverrideIgnoredOnDecisivePair(t *testing.T) {
	// A leftover override must never displace a decisive rating pair: the
	// linear conversion wins and the score has no override dependency.
	responses := completeResponses()
	responses[catalog.TraitCautiousBold] = RawResponse{Left: 5, Right: 1}

	traits, err := Resolve(responses, map[catalog.TraitKey]int{catalog.TraitCautiousBold: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := traits[catalog.TraitCautiousBold]; got != 0 {
		t.Errorf("decisive 5/1 pair must score 0 regardless of override, got %v", got)
	}
}

func TestResolve_AmbiguousWithoutOverrideFails(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitCautiousBold] = RawResponse{Left: 4, Right: 4}

	if _, err := Resolve(responses, nil); !errors.Is(err, ErrClarificationPending) {
		t.Errorf("expected ErrClarificationPending, got %v", err)
	}
}

func TestResolve_IncompleteFails(t *testing.T) {
	responses := completeResponses()
	delete(responses, catalog.TraitFinisherStarter)

	if _, err := Resolve(responses, nil); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestResolve_OverrideOutOfRange(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitCautiousBold] = RawResponse{Left: 3, Right: 3}

	if _, err := Resolve(responses, map[catalog.TraitKey]int{catalog.TraitCautiousBold: 101}); err == nil {
		t.Error("expected error for override above 100")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	responses := completeResponses()
	responses[catalog.TraitHeadHeart] = RawResponse{Left: 2, Right: 2}
	overrides := map[catalog.TraitKey]int{catalog.TraitHeadHeart: 35}

	first, err := Resolve(responses, overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(responses, overrides)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("resolver not idempotent: %v vs %v", first, second)
	}
	if len(first) != len(catalog.Traits) {
		t.Errorf("expected %d traits, got %d", len(catalog.Traits), len(first))
	}
}
