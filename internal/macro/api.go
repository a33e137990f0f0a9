// Package macro exposes the automation surface of the action tracker: the
// calls external scripts may make, and a small line-oriented script language
// over them.
package macro

import (
	"github.com/samdwyer/actiontracker/internal/condition"
	"github.com/samdwyer/actiontracker/internal/pips"
)

// Conditions is the ledger surface available to macros.
type Conditions interface {
	Apply(actorID, key string, tier int)
	Remove(actorID, key string)
	Adjust(actorID, key string, delta int)
	Tier(actorID, key string) int
	ListActive(actorID string) []condition.Status
}

// Pips is the tracker surface available to macros.
type Pips interface {
	Summary(combatantID string) (pips.Summary, bool)
	ResetTurn(combatantID string)
	SpendActions(combatantID string, count int) int
	SpendReaction(combatantID string)
}

// API is the set of externally callable entry points.
type API struct {
	conditions Conditions
	pips       Pips
}

// NewAPI creates the macro API over a ledger and a tracker.
func NewAPI(conditions Conditions, tracker Pips) *API {
	return &API{conditions: conditions, pips: tracker}
}

// GetState returns the combatant's pip summary, or false if it has none.
func (a *API) GetState(combatantID string) (pips.Summary, bool) {
	return a.pips.Summary(combatantID)
}

// Reset makes every slot of the combatant available again.
func (a *API) Reset(combatantID string) {
	a.pips.ResetTurn(combatantID)
}

// SpendAction spends count actions, at least one, and returns how many were spent.
func (a *API) SpendAction(combatantID string, count int) int {
	if count < 1 {
		count = 1
	}
	return a.pips.SpendActions(combatantID, count)
}

// SpendReaction marks the combatant's reaction used.
func (a *API) SpendReaction(combatantID string) {
	a.pips.SpendReaction(combatantID)
}

// Apply sets a condition tier on an actor.
func (a *API) Apply(actorID, key string, tier int) {
	a.conditions.Apply(actorID, key, tier)
}

// Remove deletes a condition from an actor.
func (a *API) Remove(actorID, key string) {
	a.conditions.Remove(actorID, key)
}

// Adjust nudges a condition tier by delta.
func (a *API) Adjust(actorID, key string, delta int) {
	a.conditions.Adjust(actorID, key, delta)
}

// GetTier returns a condition's tier on an actor, 0 if absent.
func (a *API) GetTier(actorID, key string) int {
	return a.conditions.Tier(actorID, key)
}

// ListActive returns the actor's conditions.
func (a *API) ListActive(actorID string) []condition.Status {
	return a.conditions.ListActive(actorID)
}
