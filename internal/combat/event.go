// Package combat funnels turn-lifecycle events into the condition ledger and
// the pip tracker, deduplicating redundant deliveries of the same transition.
package combat

import "fmt"

// EventType names a turn-lifecycle event.
type EventType string

const (
	EventCombatStarted    EventType = "CombatStarted"
	EventTurnAdvanced     EventType = "TurnAdvanced"
	EventRoundAdvanced    EventType = "RoundAdvanced"
	EventCombatantAdded   EventType = "CombatantAdded"
	EventCombatantRemoved EventType = "CombatantRemoved"
	EventCombatEnded      EventType = "CombatEnded"
)

// Event is a turn-lifecycle signal from the encounter host.
type Event interface {
	Type() EventType
	Message() string
}

// Combatant binds a combatant slot in one combat to the actor it represents.
type Combatant struct {
	ID      string
	ActorID string
}

// CombatStarted initializes every combatant and starts the first turn.
type CombatStarted struct {
	CombatID   string
	Round      int
	Combatants []Combatant
}

func (e *CombatStarted) Type() EventType { return EventCombatStarted }
func (e *CombatStarted) Message() string {
	return fmt.Sprintf("Combat %s started with %d combatants.", e.CombatID, len(e.Combatants))
}

// TurnAdvanced reports control passing from PriorCombatantID to CombatantID.
type TurnAdvanced struct {
	CombatID         string
	Round            int
	Turn             int
	CombatantID      string
	PriorCombatantID string
}

func (e *TurnAdvanced) Type() EventType { return EventTurnAdvanced }
func (e *TurnAdvanced) Message() string {
	return fmt.Sprintf("Round %d, turn %d: %s.", e.Round, e.Turn, e.CombatantID)
}

// RoundAdvanced reports a round wrap. It describes the same transition as the
// TurnAdvanced a host may deliver alongside it.
type RoundAdvanced struct {
	CombatID         string
	Round            int
	Turn             int
	CombatantID      string
	PriorCombatantID string
}

func (e *RoundAdvanced) Type() EventType { return EventRoundAdvanced }
func (e *RoundAdvanced) Message() string {
	return fmt.Sprintf("Round %d begins: %s.", e.Round, e.CombatantID)
}

// CombatantAdded reports a combatant joining a running combat.
type CombatantAdded struct {
	CombatID  string
	Combatant Combatant
}

func (e *CombatantAdded) Type() EventType { return EventCombatantAdded }
func (e *CombatantAdded) Message() string {
	return fmt.Sprintf("%s joined combat %s.", e.Combatant.ID, e.CombatID)
}

// CombatantRemoved reports a combatant leaving combat.
type CombatantRemoved struct {
	CombatID    string
	CombatantID string
}

func (e *CombatantRemoved) Type() EventType { return EventCombatantRemoved }
func (e *CombatantRemoved) Message() string {
	return fmt.Sprintf("%s left combat %s.", e.CombatantID, e.CombatID)
}

// CombatEnded tears down every combatant of the combat.
type CombatEnded struct {
	CombatID string
}

func (e *CombatEnded) Type() EventType { return EventCombatEnded }
func (e *CombatEnded) Message() string {
	return fmt.Sprintf("Combat %s ended.", e.CombatID)
}
