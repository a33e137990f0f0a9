package pips

import (
	"errors"
	"io"
	"log"

	"github.com/samdwyer/actiontracker/internal/condition"
)

// ErrLocksWithoutReset is returned by a strict tracker when condition locks
// are applied without a reset since the last time locks were applied.
var ErrLocksWithoutReset = errors.New("pips: condition locks applied without a preceding turn reset")

// Tracker owns the pip state of every combatant in play.
type Tracker struct {
	states map[string]*State
	strict bool
	logger *log.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithStrict makes ordering misuse an error instead of a logged repair.
func WithStrict(strict bool) Option {
	return func(t *Tracker) { t.strict = strict }
}

// WithLogger sets the logger for ordering warnings.
func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates an empty tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		states: make(map[string]*State),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Initialize creates fresh all-available pips, replacing any existing state.
func (t *Tracker) Initialize(combatantID string, hasBonusReaction bool) {
	t.states[combatantID] = newState(hasBonusReaction)
}

// Has reports whether the combatant has pip state.
func (t *Tracker) Has(combatantID string) bool {
	_, ok := t.states[combatantID]
	return ok
}

// ResyncBonusReaction updates the bonus reaction capability in place.
// Gaining it adds an available slot; losing it drops the slot. Action slots are untouched.
func (t *Tracker) ResyncBonusReaction(combatantID string, has bool) {
	s, ok := t.states[combatantID]
	if !ok || s.HasBonusReaction == has {
		return
	}
	s.HasBonusReaction = has
	if has {
		s.BonusReactions = []bool{true}
	} else {
		s.BonusReactions = nil
	}
}

// ResetTurn makes every slot available and clears the condition lock count.
func (t *Tracker) ResetTurn(combatantID string) {
	if s, ok := t.states[combatantID]; ok {
		s.reset()
	}
}

// ApplyConditionLocks locks leading action slots according to loss. It must
// follow ResetTurn for the same combatant; a strict tracker rejects a call
// without one, a lenient tracker logs and resets first.
func (t *Tracker) ApplyConditionLocks(combatantID string, loss condition.ActionLoss) error {
	s, ok := t.states[combatantID]
	if !ok {
		return nil
	}
	if !s.lockPending {
		if t.strict {
			return ErrLocksWithoutReset
		}
		t.logger.Printf("pips: locks for %s applied without reset; resetting first", combatantID)
		s.reset()
	}
	s.lockPending = false

	if loss.FullyIncapacitated {
		for i := range s.Actions {
			s.Actions[i] = false
		}
		for i := range s.Reactions {
			s.Reactions[i] = false
		}
		for i := range s.BonusReactions {
			s.BonusReactions[i] = false
		}
		s.ConditionLocked = ActionSlots
		return nil
	}

	n := min(max(loss.ActionsLost, 0), ActionSlots)
	for i := 0; i < n; i++ {
		s.Actions[i] = false
	}
	s.ConditionLocked = n
	return nil
}

// ToggleActionSlot flips action slot index. Condition-locked slots cannot be
// re-enabled until the next reset. It reports whether the slot changed.
func (t *Tracker) ToggleActionSlot(combatantID string, index int) bool {
	s, ok := t.states[combatantID]
	if !ok || index < 0 || index >= ActionSlots {
		return false
	}
	if s.slotState(index) == ConditionLocked {
		return false
	}
	s.Actions[index] = !s.Actions[index]
	return true
}

// ToggleReactionSlot flips the reaction slot.
func (t *Tracker) ToggleReactionSlot(combatantID string) bool {
	s, ok := t.states[combatantID]
	if !ok || len(s.Reactions) == 0 {
		return false
	}
	s.Reactions[0] = !s.Reactions[0]
	return true
}

// ToggleBonusReactionSlot flips the bonus reaction slot, if the combatant has one.
func (t *Tracker) ToggleBonusReactionSlot(combatantID string) bool {
	s, ok := t.states[combatantID]
	if !ok || len(s.BonusReactions) == 0 {
		return false
	}
	s.BonusReactions[0] = !s.BonusReactions[0]
	return true
}

// SpendActions spends up to count available action slots in index order and
// returns how many were spent.
func (t *Tracker) SpendActions(combatantID string, count int) int {
	s, ok := t.states[combatantID]
	if !ok {
		return 0
	}
	spent := 0
	for i := range s.Actions {
		if spent >= count {
			break
		}
		if s.slotState(i) == Available {
			s.Actions[i] = false
			spent++
		}
	}
	return spent
}

// SpendReaction marks the reaction slot used.
func (t *Tracker) SpendReaction(combatantID string) {
	s, ok := t.states[combatantID]
	if !ok {
		return
	}
	for i := range s.Reactions {
		s.Reactions[i] = false
	}
}

// Summary returns a snapshot of the combatant's pips.
func (t *Tracker) Summary(combatantID string) (Summary, bool) {
	s, ok := t.states[combatantID]
	if !ok {
		return Summary{}, false
	}
	sum := Summary{
		ActionsTotal:         ActionSlots,
		ReactionAvailable:    len(s.Reactions) > 0 && s.Reactions[0],
		ConditionLockedCount: s.ConditionLocked,
	}
	for _, avail := range s.Actions {
		if avail {
			sum.ActionsRemaining++
		}
	}
	if s.HasBonusReaction {
		avail := len(s.BonusReactions) > 0 && s.BonusReactions[0]
		sum.BonusReactionAvailable = &avail
	}
	return sum, true
}

// SlotStates returns the state of each action slot.
func (t *Tracker) SlotStates(combatantID string) ([ActionSlots]SlotState, bool) {
	var out [ActionSlots]SlotState
	s, ok := t.states[combatantID]
	if !ok {
		return out, false
	}
	for i := range out {
		out[i] = s.slotState(i)
	}
	return out, true
}

// Snapshot returns a copy of the combatant's state.
func (t *Tracker) Snapshot(combatantID string) (State, bool) {
	s, ok := t.states[combatantID]
	if !ok {
		return State{}, false
	}
	return s.clone(), true
}

// Teardown discards the combatant's state.
func (t *Tracker) Teardown(combatantID string) {
	delete(t.states, combatantID)
}
