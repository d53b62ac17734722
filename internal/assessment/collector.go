// Package assessment accumulates a user's raw statement ratings and walks
// the grouped assessment screens. One Collector belongs to one onboarding
// session; nothing here is shared across users.
package assessment

import (
	"errors"
	"fmt"
	"math"

	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/resolve"
)

// Pole selects which statement of a pair a rating applies to.
type Pole string

const (
	PoleLeft  Pole = "left"
	PoleRight Pole = "right"
)

var (
	// ErrUnknownTrait is returned for a trait key outside the catalog.
	ErrUnknownTrait = errors.New("unknown trait key")

	// ErrInvalidRating is returned for a rating outside 1..5. Ratings are
	// rejected at this boundary, never clamped into the scoring engine.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidPole is returned for a pole other than left or right.
	ErrInvalidPole = errors.New("pole must be left or right")
)

// Collector owns the RawResponses for one assessment run.
type Collector struct {
	responses map[catalog.TraitKey]resolve.RawResponse
}

// NewCollector returns a collector with every trait present and unanswered.
func NewCollector() *Collector {
	responses := make(map[catalog.TraitKey]resolve.RawResponse, len(catalog.Traits))
	for _, key := range catalog.TraitKeys() {
		responses[key] = resolve.RawResponse{}
	}
	return &Collector{responses: responses}
}

// RecordResponse stores one rating. The two poles of a trait are independent:
// recording one never touches the other. Re-recording overwrites, which is
// how a user edits an answer on a revisited screen.
func (c *Collector) RecordResponse(key catalog.TraitKey, pole Pole, rating int) error {
	if _, ok := catalog.TraitByKey(key); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTrait, key)
	}
	if rating < resolve.RatingMin || rating > resolve.RatingMax {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	r := c.responses[key]
	switch pole {
	case PoleLeft:
		r.Left = rating
	case PoleRight:
		r.Right = rating
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPole, pole)
	}
	c.responses[key] = r
	return nil
}

// Response returns the current ratings for a trait.
func (c *Collector) Response(key catalog.TraitKey) (resolve.RawResponse, bool) {
	r, ok := c.responses[key]
	return r, ok
}

// IsGroupComplete reports whether every trait in the group has both ratings.
// A trait with only one pole rated blocks completion.
func (c *Collector) IsGroupComplete(group catalog.StatementGroup) bool {
	for _, key := range group.Traits {
		if !c.responses[key].Answered() {
			return false
		}
	}
	return true
}

// IsComplete reports whether every trait in the catalog has both ratings.
func (c *Collector) IsComplete() bool {
	for _, r := range c.responses {
		if !r.Answered() {
			return false
		}
	}
	return true
}

// Progress returns the percentage of fully answered traits, 0-100,
// rounded to the nearest integer.
func (c *Collector) Progress() int {
	answered := 0
	for _, r := range c.responses {
		if r.Answered() {
			answered++
		}
	}
	return int(math.Round(float64(answered) / float64(len(c.responses)) * 100))
}

// Responses returns a copy of the raw responses for the resolver.
func (c *Collector) Responses() map[catalog.TraitKey]resolve.RawResponse {
	out := make(map[catalog.TraitKey]resolve.RawResponse, len(c.responses))
	for k, v := range c.responses {
		out[k] = v
	}
	return out
}
