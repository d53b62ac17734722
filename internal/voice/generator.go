// Package voice derives the tone, motivation style, and example phrasing
// that downstream prompt construction personalizes the assistant with.
package voice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/catalog"
)

// SecondaryCloseness is the maximum points the secondary archetype may trail
// the primary by and still color the voice.
const SecondaryCloseness = 15

// RequiredValues is the exact number of core values a user selects.
const RequiredValues = 5

// Inspiration selection bounds.
const (
	MinInspirations = 5
	MaxInspirations = 10
)

// ErrIncompleteInputs is returned when a required contract input is missing
// or malformed. Optional inputs (future-self text, display name) never
// trigger it.
var ErrIncompleteInputs = errors.New("voice inputs incomplete")

// Inputs carries everything the generator works from. Name and FutureSelf
// are optional; the rest are enforced contract inputs.
type Inputs struct {
	Blend          archetype.Blend
	Name           string
	ValueIDs       []string
	InspirationIDs []string
	FutureSelf     string
}

// Profile is the finished voice guidance. Immutable once generated.
type Profile struct {
	Tone            string   `json:"tone"`
	MotivationStyle string   `json:"motivation_style"`
	ExamplePhrases  []string `json:"example_phrases"`
}

// Generate builds a Profile from a completed blend and the user's
// selections. Deterministic: identical inputs yield an identical profile.
func Generate(in Inputs) (Profile, error) {
	primary, ok := archetype.ByName(in.Blend.Primary)
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown primary archetype %q", ErrIncompleteInputs, in.Blend.Primary)
	}
	secondary, ok := archetype.ByName(in.Blend.Secondary)
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown secondary archetype %q", ErrIncompleteInputs, in.Blend.Secondary)
	}

	if len(in.ValueIDs) != RequiredValues {
		return Profile{}, fmt.Errorf("%w: need exactly %d values, got %d", ErrIncompleteInputs, RequiredValues, len(in.ValueIDs))
	}
	values := make([]catalog.CoreValue, len(in.ValueIDs))
	for i, id := range in.ValueIDs {
		v, ok := catalog.ValueByID(id)
		if !ok {
			return Profile{}, fmt.Errorf("%w: unknown value %q", ErrIncompleteInputs, id)
		}
		values[i] = v
	}

	if len(in.InspirationIDs) < MinInspirations || len(in.InspirationIDs) > MaxInspirations {
		return Profile{}, fmt.Errorf("%w: need %d-%d inspirations, got %d", ErrIncompleteInputs, MinInspirations, MaxInspirations, len(in.InspirationIDs))
	}
	inspirations := make([]catalog.Inspiration, len(in.InspirationIDs))
	for i, id := range in.InspirationIDs {
		insp, ok := catalog.InspirationByID(id)
		if !ok {
			return Profile{}, fmt.Errorf("%w: unknown inspiration %q", ErrIncompleteInputs, id)
		}
		inspirations[i] = insp
	}

	tone := primary.Voice.Tone
	motivation := primary.Voice.MotivationStyle
	if in.Blend.Closeness() <= SecondaryCloseness {
		tone = fmt.Sprintf("%s, with an undercurrent of %s", primary.Voice.Tone, secondary.Voice.Tone)
		motivation = fmt.Sprintf("%s, balanced by %s", primary.Voice.MotivationStyle, secondary.Voice.MotivationStyle)
	}

	phrases := expandPhrases(primary.Voice.Phrases, in.Name, values[0], inspirations[0])
	if in.FutureSelf != "" && len(phrases) < 5 {
		phrases = append(phrases, fmt.Sprintf("You told me who you're becoming: %q. Act like that person today.", in.FutureSelf))
	}

	return Profile{
		Tone:            tone,
		MotivationStyle: motivation,
		ExamplePhrases:  phrases,
	}, nil
}

func expandPhrases(templates []string, name string, topValue catalog.CoreValue, topInspiration catalog.Inspiration) []string {
	if name == "" {
		name = "friend"
	}
	replacer := strings.NewReplacer(
		"{name}", name,
		"{value}", strings.ToLower(topValue.Label),
		"{inspiration}", topInspiration.Name,
	)

	phrases := make([]string, len(templates))
	for i, tpl := range templates {
		phrases[i] = replacer.Replace(tpl)
	}
	return phrases
}
