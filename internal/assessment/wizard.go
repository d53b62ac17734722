package assessment

import (
	"errors"
	"fmt"

	"github.com/inward-labs/inward/internal/catalog"
	"github.com/inward-labs/inward/internal/resolve"
)

// Phase is the wizard's current state. The machine is pure: transitions are
// driven only by the event methods below, no UI involved.
type Phase string

const (
	PhaseInGroup       Phase = "in_group"
	PhaseClarification Phase = "clarification"
	PhaseComplete      Phase = "complete"
)

var (
	// ErrGroupIncomplete blocks forward navigation past a group with
	// unanswered statements.
	ErrGroupIncomplete = errors.New("group incomplete")

	// ErrWrongPhase is returned for an event that the current phase
	// does not accept.
	ErrWrongPhase = errors.New("event not valid in current phase")

	// ErrNotClarified blocks completion while ambiguous traits still
	// lack a slider value.
	ErrNotClarified = errors.New("ambiguous traits not yet clarified")
)

// Wizard sequences the assessment: forward/backward through the statement
// groups, then a single clarification pass for ambiguous traits, then done.
type Wizard struct {
	collector *Collector
	phase     Phase
	groupIdx  int
	ambiguous []catalog.TraitKey
	overrides map[catalog.TraitKey]int
}

// NewWizard starts a fresh assessment at the first group.
func NewWizard() *Wizard {
	return &Wizard{
		collector: NewCollector(),
		phase:     PhaseInGroup,
		overrides: make(map[catalog.TraitKey]int),
	}
}

// Phase returns the current state.
func (w *Wizard) Phase() Phase { return w.phase }

// GroupIndex returns the current group position (meaningful in PhaseInGroup).
func (w *Wizard) GroupIndex() int { return w.groupIdx }

// CurrentGroup returns the group being presented.
func (w *Wizard) CurrentGroup() catalog.StatementGroup {
	return catalog.Groups[w.groupIdx]
}

// Collector exposes the underlying response collector.
func (w *Wizard) Collector() *Collector { return w.collector }

// AmbiguousTraits returns the traits awaiting clarification, in catalog order.
func (w *Wizard) AmbiguousTraits() []catalog.TraitKey {
	out := make([]catalog.TraitKey, len(w.ambiguous))
	copy(out, w.ambiguous)
	return out
}

// RecordAnswer handles the AnswerRecorded event. Valid while answering
// groups; editing an earlier answer after clarification began would
// invalidate the ambiguity set, so it drops back to the group phase.
func (w *Wizard) RecordAnswer(key catalog.TraitKey, pole Pole, rating int) error {
	if w.phase == PhaseComplete {
		return fmt.Errorf("%w: %s", ErrWrongPhase, w.phase)
	}
	if err := w.collector.RecordResponse(key, pole, rating); err != nil {
		return err
	}
	// Any earlier clarification for this trait is stale once its ratings
	// change, whichever phase the edit happens in.
	delete(w.overrides, key)
	if w.phase == PhaseClarification {
		// Rerun ambiguity detection on the next forward step.
		w.phase = PhaseInGroup
		w.groupIdx = groupOf(key)
		w.ambiguous = nil
	}
	return nil
}

// Next handles the NextRequested event. From the last group it either moves
// to clarification (when ambiguous traits exist) or straight to complete.
func (w *Wizard) Next() error {
	switch w.phase {
	case PhaseInGroup:
		group := catalog.Groups[w.groupIdx]
		if !w.collector.IsGroupComplete(group) {
			return fmt.Errorf("%w: %s", ErrGroupIncomplete, group.Title)
		}
		if w.groupIdx < len(catalog.Groups)-1 {
			w.groupIdx++
			return nil
		}

		flagged, err := resolve.AmbiguousTraits(w.collector.Responses())
		if err != nil {
			return err
		}
		if len(flagged) == 0 {
			w.phase = PhaseComplete
			return nil
		}
		w.ambiguous = flagged
		w.phase = PhaseClarification
		return nil

	case PhaseClarification:
		for _, key := range w.ambiguous {
			if _, ok := w.overrides[key]; !ok {
				return fmt.Errorf("%w: %s", ErrNotClarified, key)
			}
		}
		w.phase = PhaseComplete
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrWrongPhase, w.phase)
	}
}

// Back handles the BackRequested event. Revisiting a completed group is
// allowed; backing out of clarification returns to the last group.
func (w *Wizard) Back() error {
	switch w.phase {
	case PhaseInGroup:
		if w.groupIdx == 0 {
			return fmt.Errorf("%w: already at first group", ErrWrongPhase)
		}
		w.groupIdx--
		return nil
	case PhaseClarification:
		w.phase = PhaseInGroup
		w.groupIdx = len(catalog.Groups) - 1
		w.ambiguous = nil
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrWrongPhase, w.phase)
	}
}

// SubmitClarification handles the ClarificationSubmitted event: the direct
// bipolar slider value (0-100) for one flagged trait.
func (w *Wizard) SubmitClarification(key catalog.TraitKey, value int) error {
	if w.phase != PhaseClarification {
		return fmt.Errorf("%w: %s", ErrWrongPhase, w.phase)
	}
	flagged := false
	for _, k := range w.ambiguous {
		if k == key {
			flagged = true
			break
		}
	}
	if !flagged {
		return fmt.Errorf("trait %s was not flagged ambiguous", key)
	}
	if value < 0 || value > 100 {
		return fmt.Errorf("clarification value out of range: %d", value)
	}
	w.overrides[key] = value
	return nil
}

// Result runs the resolver once the wizard is complete and returns the
// finished trait vector.
func (w *Wizard) Result() (resolve.UserTraits, error) {
	if w.phase != PhaseComplete {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, w.phase)
	}
	return resolve.Resolve(w.collector.Responses(), w.overrides)
}

// Overrides returns a copy of the collected clarification values.
func (w *Wizard) Overrides() map[catalog.TraitKey]int {
	out := make(map[catalog.TraitKey]int, len(w.overrides))
	for k, v := range w.overrides {
		out[k] = v
	}
	return out
}

func groupOf(key catalog.TraitKey) int {
	for i, g := range catalog.Groups {
		for _, k := range g.Traits {
			if k == key {
				return i
			}
		}
	}
	return 0
}
