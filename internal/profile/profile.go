// Package profile defines the finished identity snapshot: the single atomic
// record handed to persistence and read by prompt construction.
package profile

import (
	"time"

	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/resolve"
	"github.com/inward-labs/inward/internal/voice"
)

// Record is the terminal artifact of one onboarding run. It is fully formed
// before it leaves the orchestrator; the store never sees a partial one.
type Record struct {
	UserID                 string             `json:"user_id"`
	DisplayName            string             `json:"display_name,omitempty"`
	Traits                 resolve.UserTraits `json:"traits"`
	Blend                  archetype.Blend    `json:"archetype_blend"`
	Voice                  voice.Profile      `json:"voice_profile"`
	SelectedValueIDs       []string           `json:"selected_value_ids"`
	SelectedInspirationIDs []string           `json:"selected_inspiration_ids"`
	FutureSelf             string             `json:"future_self,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
}
