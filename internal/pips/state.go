// Package pips tracks the per-combatant action economy: three action slots,
// a reaction slot, and an optional bonus reaction slot.
package pips

// ActionSlots is the number of action slots per turn.
const ActionSlots = 3

// SlotState is the display state of one action slot.
type SlotState int

const (
	Available SlotState = iota
	ManuallySpent
	ConditionLocked
)

// String returns a human-readable name for the slot state.
func (s SlotState) String() string {
	switch s {
	case Available:
		return "Available"
	case ManuallySpent:
		return "Spent"
	case ConditionLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// State is one combatant's pips for the current turn. A true slot is available.
type State struct {
	Actions          [ActionSlots]bool
	Reactions        []bool
	HasBonusReaction bool
	BonusReactions   []bool
	ConditionLocked  int

	// lockPending is set by a reset and cleared when locks are applied.
	lockPending bool
}

func newState(hasBonusReaction bool) *State {
	s := &State{HasBonusReaction: hasBonusReaction}
	s.reset()
	return s
}

func (s *State) reset() {
	for i := range s.Actions {
		s.Actions[i] = true
	}
	s.Reactions = []bool{true}
	s.BonusReactions = nil
	if s.HasBonusReaction {
		s.BonusReactions = []bool{true}
	}
	s.ConditionLocked = 0
	s.lockPending = true
}

// slotState classifies action slot i.
func (s *State) slotState(i int) SlotState {
	switch {
	case s.Actions[i]:
		return Available
	case i < s.ConditionLocked:
		return ConditionLocked
	default:
		return ManuallySpent
	}
}

func (s *State) clone() State {
	c := *s
	c.Reactions = append([]bool(nil), s.Reactions...)
	c.BonusReactions = append([]bool(nil), s.BonusReactions...)
	return c
}

// Summary is a read-only snapshot for macros and other consumers.
type Summary struct {
	ActionsRemaining       int
	ActionsTotal           int
	ReactionAvailable      bool
	BonusReactionAvailable *bool // nil when the combatant has no bonus reaction
	ConditionLockedCount   int
}
