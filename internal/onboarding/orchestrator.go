// Package onboarding orchestrates the assessment run end to end: wizard
// sessions in memory, then resolution, archetype blending, voice generation,
// persistence, and the completion event.
package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inward-labs/inward/internal/archetype"
	"github.com/inward-labs/inward/internal/assessment"
	"github.com/inward-labs/inward/internal/bus"
	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/profile"
	"github.com/inward-labs/inward/internal/snapshot"
	"github.com/inward-labs/inward/internal/store"
	"github.com/inward-labs/inward/internal/voice"
)

// ErrNoSession is returned for a user with no assessment in progress.
var ErrNoSession = errors.New("no onboarding session")

// Orchestrator holds in-flight wizard sessions and drives a finished one
// through scoring, persistence, and the completion event. Store and bus are
// optional; without them completion still returns the record.
type Orchestrator struct {
	store  *store.Store
	bus    *bus.Client
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*assessment.Wizard // keyed by user ID
}

func New(s *store.Store, b *bus.Client, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		store:    s,
		bus:      b,
		logger:   logger,
		sessions: make(map[string]*assessment.Wizard),
	}
}

// State is a snapshot of one session for the API layer.
type State struct {
	Phase           assessment.Phase   `json:"phase"`
	GroupIndex      int                `json:"group_index"`
	GroupTitle      string             `json:"group_title,omitempty"`
	Progress        int                `json:"progress"`
	AmbiguousTraits []catalog.TraitKey `json:"ambiguous_traits,omitempty"`
}

// Start begins a fresh assessment for the user, discarding any session
// already in progress.
func (o *Orchestrator) Start(userID string) State {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := assessment.NewWizard()
	o.sessions[userID] = w
	o.logger.Info("onboarding started", "user_id", userID)
	return stateOf(w)
}

// RecordAnswer records one statement rating in the user's session.
func (o *Orchestrator) RecordAnswer(userID string, key catalog.TraitKey, pole assessment.Pole, rating int) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.sessions[userID]
	if !ok {
		return State{}, ErrNoSession
	}
	if err := w.RecordAnswer(key, pole, rating); err != nil {
		return State{}, err
	}
	return stateOf(w), nil
}

// Next advances the user's session one step.
func (o *Orchestrator) Next(userID string) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.sessions[userID]
	if !ok {
		return State{}, ErrNoSession
	}
	if err := w.Next(); err != nil {
		return State{}, err
	}
	return stateOf(w), nil
}

// Back steps the user's session backwards.
func (o *Orchestrator) Back(userID string) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.sessions[userID]
	if !ok {
		return State{}, ErrNoSession
	}
	if err := w.Back(); err != nil {
		return State{}, err
	}
	return stateOf(w), nil
}

// SessionState returns the current state of the user's session.
func (o *Orchestrator) SessionState(userID string) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.sessions[userID]
	if !ok {
		return State{}, ErrNoSession
	}
	return stateOf(w), nil
}

// SubmitClarification records the slider value for one flagged trait.
func (o *Orchestrator) SubmitClarification(userID string, key catalog.TraitKey, value int) (State, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w, ok := o.sessions[userID]
	if !ok {
		return State{}, ErrNoSession
	}
	if err := w.SubmitClarification(key, value); err != nil {
		return State{}, err
	}
	return stateOf(w), nil
}

// CompletionInput carries the identity selections made after the assessment.
type CompletionInput struct {
	DisplayName    string   `json:"display_name"`
	ValueIDs       []string `json:"value_ids"`
	InspirationIDs []string `json:"inspiration_ids"`
	FutureSelf     string   `json:"future_self"`
}

// Complete finishes the user's session: resolves traits, computes the
// archetype blend, generates the voice profile, persists the record, and
// publishes the completion event. The session is consumed on success.
func (o *Orchestrator) Complete(ctx context.Context, userID string, in CompletionInput) (*profile.Record, error) {
	// The wizard is shared with the other session methods; every read of
	// it stays under the lock.
	o.mu.Lock()
	w, ok := o.sessions[userID]
	if !ok {
		o.mu.Unlock()
		return nil, ErrNoSession
	}
	traits, err := w.Result()
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	blend, err := archetype.Compute(traits)
	if err != nil {
		return nil, fmt.Errorf("compute archetype blend: %w", err)
	}

	vp, err := voice.Generate(voice.Inputs{
		Blend:          blend,
		Name:           in.DisplayName,
		ValueIDs:       in.ValueIDs,
		InspirationIDs: in.InspirationIDs,
		FutureSelf:     in.FutureSelf,
	})
	if err != nil {
		return nil, fmt.Errorf("generate voice profile: %w", err)
	}

	rec := profile.Record{
		UserID:                 userID,
		DisplayName:            in.DisplayName,
		Traits:                 traits,
		Blend:                  blend,
		Voice:                  vp,
		SelectedValueIDs:       in.ValueIDs,
		SelectedInspirationIDs: in.InspirationIDs,
		FutureSelf:             in.FutureSelf,
		CreatedAt:              time.Now().UTC(),
	}

	if o.store != nil {
		if _, err := o.store.WriteProfileSnapshot(ctx, rec); err != nil {
			return nil, fmt.Errorf("persist profile: %w", err)
		}
	}

	if o.bus != nil {
		if err := o.bus.Publish(bus.SubjectProfileCompleted, rec); err != nil {
			o.logger.Error("failed to publish profile completed", "user_id", userID, "error", err)
		}
	}

	o.mu.Lock()
	delete(o.sessions, userID)
	o.mu.Unlock()

	o.logger.Info("onboarding completed",
		"user_id", userID,
		"primary", blend.Primary,
		"secondary", blend.Secondary,
	)
	return &rec, nil
}

// HandleSnapshotUpdated is the NATS handler for lifeos.context.snapshot.updated.
func (o *Orchestrator) HandleSnapshotUpdated(subject string, data []byte) {
	ctx := context.Background()

	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		o.logger.Error("failed to parse snapshot event", "error", err)
		return
	}
	if snap.UserID == "" {
		o.logger.Error("snapshot event missing user_id")
		return
	}
	if snap.CapturedAt.IsZero() {
		snap.CapturedAt = time.Now().UTC()
	}

	if o.store == nil {
		return
	}
	if err := o.store.UpsertContextSnapshot(ctx, snap); err != nil {
		o.logger.Error("failed to store snapshot", "user_id", snap.UserID, "error", err)
		return
	}
	o.logger.Info("context snapshot updated", "user_id", snap.UserID)
}

func stateOf(w *assessment.Wizard) State {
	st := State{
		Phase:      w.Phase(),
		GroupIndex: w.GroupIndex(),
		Progress:   w.Collector().Progress(),
	}
	if st.Phase == assessment.PhaseInGroup {
		st.GroupTitle = w.CurrentGroup().Title
	}
	if st.Phase == assessment.PhaseClarification {
		st.AmbiguousTraits = w.AmbiguousTraits()
	}
	return st
}
