package archetype

import (
	"fmt"
	"math"

	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/resolve"
)

// Blend is the ranked similarity of one user's trait vector to every
// archetype. Pure value: recomputing from the same UserTraits yields an
// identical Blend.
type Blend struct {
	Scores      map[Name]float64 `json:"scores"`
	Primary     Name             `json:"primary"`
	Secondary   Name             `json:"secondary"`
	DisplayName string           `json:"name"`
}

// Compute scores the trait vector against every archetype definition.
// Similarity is 100 minus the mean absolute per-dimension difference, so an
// exact match scores 100 and the function is monotonic in per-dimension
// distance. Ranking ties break to the first-defined archetype.
func Compute(traits resolve.UserTraits) (Blend, error) {
	if len(traits) != len(catalog.Traits) {
		return Blend{}, fmt.Errorf("trait vector incomplete: have %d of %d", len(traits), len(catalog.Traits))
	}
	for _, key := range catalog.TraitKeys() {
		if _, ok := traits[key]; !ok {
			return Blend{}, fmt.Errorf("trait vector missing %s", key)
		}
	}

	scores := make(map[Name]float64, len(Definitions))
	for _, def := range Definitions {
		scores[def.Name] = similarity(traits, def.Targets)
	}

	// Rank by score descending; equal scores keep definition order.
	primary, secondary := Definitions[0].Name, Definitions[1].Name
	if scores[secondary] > scores[primary] {
		primary, secondary = secondary, primary
	}
	for _, def := range Definitions[2:] {
		switch {
		case scores[def.Name] > scores[primary]:
			secondary = primary
			primary = def.Name
		case scores[def.Name] > scores[secondary]:
			secondary = def.Name
		}
	}

	return Blend{
		Scores:      scores,
		Primary:     primary,
		Secondary:   secondary,
		DisplayName: displayName(primary, secondary),
	}, nil
}

// Closeness returns how far the secondary score trails the primary.
func (b Blend) Closeness() float64 {
	return b.Scores[b.Primary] - b.Scores[b.Secondary]
}

func similarity(traits resolve.UserTraits, targets map[catalog.TraitKey]float64) float64 {
	var total float64
	for key, target := range targets {
		total += math.Abs(traits[key] - target)
	}
	return 100 - total/float64(len(targets))
}
