// Package resolve converts paired statement ratings into normalized trait
// scores. It is pure: no I/O, no state, deterministic for identical inputs.
package resolve

import (
	"errors"
	"fmt"

	"github.com/inward-labs/inward/internal/catalog"
)

// Rating bounds for a single statement. 0 means "not yet answered".
const (
	RatingMin = 1
	RatingMax = 5
)

// AmbiguityThreshold is the minimum |right-left| difference for a pair of
// ratings to resolve on its own. Below it, neither statement was clearly
// endorsed over the other and the trait goes to the clarification pass.
const AmbiguityThreshold = 2

var (
	// ErrIncomplete is returned when a trait is missing one or both ratings.
	ErrIncomplete = errors.New("assessment incomplete")

	// ErrClarificationPending is returned when an ambiguous trait has no
	// fallback override. Ambiguity is never defaulted away.
	ErrClarificationPending = errors.New("clarification pending")
)

// RawResponse holds the two independent 1-5 agreement ratings for one trait.
// Left and Right are never coupled: answering one fills nothing in the other.
type RawResponse struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Answered reports whether both statements have been rated.
func (r RawResponse) Answered() bool {
	return r.Left >= RatingMin && r.Right >= RatingMin
}

// UserTraits is the finished score vector: every trait key mapped to a
// normalized 0-100 score (0 = fully left pole, 100 = fully right pole).
// Scores land on half-point boundaries (odd rating differences map to
// x2.5 values), so the vector is float64 rather than int.
type UserTraits map[catalog.TraitKey]float64

// Ambiguous reports whether a rating pair needs the clarification pass.
// Equal ratings (agreement or disagreement with both statements alike) and
// near-ties both qualify; a clear one-sided endorsement does not.
func Ambiguous(r RawResponse) bool {
	diff := r.Right - r.Left
	if diff < 0 {
		diff = -diff
	}
	return diff < AmbiguityThreshold
}

// Score maps an unambiguous rating pair onto [0,100] linearly:
// diff -4 → 0 (strong left), 0 → 50, +4 → 100 (strong right).
func Score(r RawResponse) float64 {
	diff := r.Right - r.Left
	score := 50.0 + 12.5*float64(diff)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// AmbiguousTraits returns the trait keys flagged for clarification, in
// catalog definition order. A trait missing either rating is reported as an
// error, never guessed at.
func AmbiguousTraits(responses map[catalog.TraitKey]RawResponse) ([]catalog.TraitKey, error) {
	var flagged []catalog.TraitKey
	for _, key := range catalog.TraitKeys() {
		r, ok := responses[key]
		if !ok || !r.Answered() {
			return nil, fmt.Errorf("%w: trait %s", ErrIncomplete, key)
		}
		if Ambiguous(r) {
			flagged = append(flagged, key)
		}
	}
	return flagged, nil
}

// Resolve produces the complete UserTraits vector from raw responses plus
// fallback overrides for the ambiguous traits. Overrides are applied
// verbatim, but only to traits that are actually ambiguous: a decisive
// rating pair always resolves through the linear conversion, so a stale
// override left over from an earlier pass can never displace it.
// Idempotent: the same inputs always yield the same output.
func Resolve(responses map[catalog.TraitKey]RawResponse, overrides map[catalog.TraitKey]int) (UserTraits, error) {
	traits := make(UserTraits, len(catalog.Traits))

	for _, key := range catalog.TraitKeys() {
		r, ok := responses[key]
		if !ok || !r.Answered() {
			return nil, fmt.Errorf("%w: trait %s", ErrIncomplete, key)
		}

		if !Ambiguous(r) {
			traits[key] = Score(r)
			continue
		}

		override, ok := overrides[key]
		if !ok {
			return nil, fmt.Errorf("%w: trait %s", ErrClarificationPending, key)
		}
		if override < 0 || override > 100 {
			return nil, fmt.Errorf("override for %s out of range: %d", key, override)
		}
		traits[key] = float64(override)
	}

	return traits, nil
}
