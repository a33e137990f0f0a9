package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/actiontracker/data"
	"github.com/samdwyer/actiontracker/internal/combat"
	"github.com/samdwyer/actiontracker/internal/entity"
	"github.com/samdwyer/actiontracker/internal/telemetry"
)

var (
	// ErrNotActive is returned when turns are advanced outside an active encounter.
	ErrNotActive = errors.New("encounter is not active")
	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("encounter already started")
	// ErrCurrentCombatant is returned when removing the combatant whose turn it is.
	ErrCurrentCombatant = errors.New("cannot remove the current combatant")
)

// EventHandler consumes turn-lifecycle events.
type EventHandler interface {
	Handle(ctx context.Context, ev combat.Event) error
}

// ConditionSetter applies starting conditions.
type ConditionSetter interface {
	Apply(actorID, key string, tier int)
}

// Encounter owns round and turn sequencing for one combat and reports every
// change to its handler. A round wrap is reported twice, as a RoundAdvanced
// and a TurnAdvanced describing the same transition.
type Encounter struct {
	ID   string
	Name string

	def        *data.EncounterDef
	roster     *entity.Roster
	conditions ConditionSetter
	handler    EventHandler

	order []combat.Combatant
	phase Phase
	round int
	turn  int
}

// NewEncounter creates an encounter in the setup phase with a fresh combat id.
func NewEncounter(def *data.EncounterDef, roster *entity.Roster, conditions ConditionSetter, handler EventHandler) *Encounter {
	e := &Encounter{
		ID:         uuid.NewString(),
		Name:       def.Name,
		def:        def,
		roster:     roster,
		conditions: conditions,
		handler:    handler,
		phase:      PhaseSetup,
	}
	for i := range def.Combatants {
		c := &def.Combatants[i]
		e.order = append(e.order, combat.Combatant{ID: c.CombatantID(), ActorID: c.ID})
	}
	return e
}

// register adds the combatant's actor to the roster and applies its starting conditions.
func (e *Encounter) register(c *data.CombatantDef) {
	actor := entity.NewActor(c.ID, c.Name, entity.ParseSide(c.Side), c.Feats...)
	if g := c.GlyphRune(); g != 0 {
		actor.Symbol = g
	}
	e.roster.Add(actor)
	for _, key := range c.ConditionKeys() {
		e.conditions.Apply(c.ID, key, c.Conditions[key])
	}
}

// Start registers every combatant and begins round 1.
func (e *Encounter) Start(ctx context.Context) error {
	if e.phase != PhaseSetup {
		return ErrAlreadyStarted
	}
	ctx, span := telemetry.Tracer("game").Start(ctx, "encounter.start")
	span.SetAttributes(
		attribute.String("combat_id", e.ID),
		attribute.Int("combatants", len(e.order)),
	)
	defer span.End()

	for i := range e.def.Combatants {
		e.register(&e.def.Combatants[i])
	}
	e.phase = PhaseActive
	e.round, e.turn = 1, 0
	return e.handler.Handle(ctx, &combat.CombatStarted{
		CombatID:   e.ID,
		Round:      e.round,
		Combatants: e.Order(),
	})
}

// Next passes the turn to the next combatant in order.
func (e *Encounter) Next(ctx context.Context) error {
	if e.phase != PhaseActive || len(e.order) == 0 {
		return ErrNotActive
	}
	prior := e.order[e.turn].ID
	e.turn++
	if e.turn >= len(e.order) {
		e.turn = 0
		e.round++
		wrap := &combat.RoundAdvanced{
			CombatID:         e.ID,
			Round:            e.round,
			Turn:             e.turn,
			CombatantID:      e.order[e.turn].ID,
			PriorCombatantID: prior,
		}
		if err := e.handler.Handle(ctx, wrap); err != nil {
			return err
		}
	}
	return e.handler.Handle(ctx, &combat.TurnAdvanced{
		CombatID:         e.ID,
		Round:            e.round,
		Turn:             e.turn,
		CombatantID:      e.order[e.turn].ID,
		PriorCombatantID: prior,
	})
}

// Add brings a new combatant into the encounter, last in turn order.
func (e *Encounter) Add(ctx context.Context, c data.CombatantDef) error {
	if e.phase == PhaseEnded {
		return ErrNotActive
	}
	for _, existing := range e.order {
		if existing.ID == c.CombatantID() {
			return fmt.Errorf("combatant %s already in encounter", existing.ID)
		}
	}
	if c.Name == "" {
		c.Name = c.ID
	}
	e.def.Combatants = append(e.def.Combatants, c)
	cb := combat.Combatant{ID: c.CombatantID(), ActorID: c.ID}
	e.order = append(e.order, cb)
	if e.phase == PhaseSetup {
		return nil
	}
	e.register(&c)
	return e.handler.Handle(ctx, &combat.CombatantAdded{CombatID: e.ID, Combatant: cb})
}

// Remove takes a combatant out of turn order.
func (e *Encounter) Remove(ctx context.Context, combatantID string) error {
	idx := -1
	for i, cb := range e.order {
		if cb.ID == combatantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if e.phase == PhaseActive && idx == e.turn {
		return ErrCurrentCombatant
	}
	e.order = append(e.order[:idx], e.order[idx+1:]...)
	for i := range e.def.Combatants {
		if e.def.Combatants[i].CombatantID() == combatantID {
			e.def.Combatants = append(e.def.Combatants[:i], e.def.Combatants[i+1:]...)
			break
		}
	}
	if idx < e.turn {
		e.turn--
	}
	if e.phase != PhaseActive {
		return nil
	}
	return e.handler.Handle(ctx, &combat.CombatantRemoved{CombatID: e.ID, CombatantID: combatantID})
}

// End finishes the encounter.
func (e *Encounter) End(ctx context.Context) error {
	if e.phase != PhaseActive {
		return ErrNotActive
	}
	e.phase = PhaseEnded
	return e.handler.Handle(ctx, &combat.CombatEnded{CombatID: e.ID})
}

// Current returns the combatant whose turn it is.
func (e *Encounter) Current() (combat.Combatant, bool) {
	if e.phase != PhaseActive || len(e.order) == 0 {
		return combat.Combatant{}, false
	}
	return e.order[e.turn], true
}

// Order returns the combatants in turn order.
func (e *Encounter) Order() []combat.Combatant {
	out := make([]combat.Combatant, len(e.order))
	copy(out, e.order)
	return out
}

// Phase returns the encounter phase.
func (e *Encounter) Phase() Phase { return e.phase }

// Round returns the current round, 0 before the encounter starts.
func (e *Encounter) Round() int { return e.round }

// Turn returns the index of the current combatant.
func (e *Encounter) Turn() int { return e.turn }
