package combat

import (
	"context"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/actiontracker/internal/condition"
	"github.com/samdwyer/actiontracker/internal/telemetry"
)

// ConditionLedger is the part of the condition ledger the coordinator drives.
type ConditionLedger interface {
	ComputeActionLoss(actorID string) condition.ActionLoss
	EndTurn(actorID string) []string
}

// PipTracker is the part of the pip tracker the coordinator drives.
type PipTracker interface {
	Initialize(combatantID string, hasBonusReaction bool)
	Has(combatantID string) bool
	ResyncBonusReaction(combatantID string, has bool)
	ResetTurn(combatantID string)
	ApplyConditionLocks(combatantID string, loss condition.ActionLoss) error
	Teardown(combatantID string)
}

// FeatureInspector reports actor features that shape the pip row.
type FeatureInspector interface {
	HasBonusReaction(actorID string) bool
}

type noFeatures struct{}

func (noFeatures) HasBonusReaction(string) bool { return false }

// Coordinator is the single entry point for turn-lifecycle events.
type Coordinator struct {
	ledger   ConditionLedger
	tracker  PipTracker
	features FeatureInspector
	gate     *Gate
	tracer   trace.Tracer
	logger   *log.Logger

	// combats maps combat id to its combatants, each mapped to an actor id.
	combats map[string]map[string]string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithFeatures sets the feature inspector. Defaults to one that grants nothing.
func WithFeatures(f FeatureInspector) Option {
	return func(c *Coordinator) { c.features = f }
}

// WithGateCapacity sets how many handled transitions are remembered.
func WithGateCapacity(n int) Option {
	return func(c *Coordinator) { c.gate = NewGate(n) }
}

// WithLogger sets the logger for skipped and duplicate events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer overrides the tracer. Defaults to telemetry.Tracer("combat").
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Coordinator) { c.tracer = tracer }
}

// NewCoordinator creates a coordinator over the ledger and tracker.
func NewCoordinator(ledger ConditionLedger, tracker PipTracker, opts ...Option) *Coordinator {
	c := &Coordinator{
		ledger:   ledger,
		tracker:  tracker,
		features: noFeatures{},
		gate:     NewGate(DefaultGateCapacity),
		tracer:   telemetry.Tracer("combat"),
		logger:   log.New(io.Discard, "", 0),
		combats:  make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle processes one event. Redundant deliveries of a transition that was
// already handled are ignored.
func (c *Coordinator) Handle(ctx context.Context, ev Event) error {
	ctx, span := c.tracer.Start(ctx, "combat.event")
	span.SetAttributes(attribute.String("event", string(ev.Type())))
	defer span.End()

	switch e := ev.(type) {
	case *CombatStarted:
		return c.combatStarted(ctx, e)
	case *TurnAdvanced:
		return c.transition(ctx, e.CombatID, e.Round, e.Turn, e.CombatantID, e.PriorCombatantID)
	case *RoundAdvanced:
		return c.transition(ctx, e.CombatID, e.Round, e.Turn, e.CombatantID, e.PriorCombatantID)
	case *CombatantAdded:
		c.combatantAdded(e)
	case *CombatantRemoved:
		c.combatantRemoved(e)
	case *CombatEnded:
		c.combatEnded(e)
	default:
		c.logger.Printf("combat: ignoring unhandled event %s", ev.Type())
	}
	return nil
}

func (c *Coordinator) combatStarted(ctx context.Context, e *CombatStarted) error {
	members := make(map[string]string, len(e.Combatants))
	for _, cb := range e.Combatants {
		members[cb.ID] = cb.ActorID
		c.tracker.Initialize(cb.ID, c.features.HasBonusReaction(cb.ActorID))
	}
	c.combats[e.CombatID] = members

	if len(e.Combatants) == 0 {
		return nil
	}
	round := e.Round
	if round == 0 {
		round = 1
	}
	return c.transition(ctx, e.CombatID, round, 0, e.Combatants[0].ID, "")
}

func (c *Coordinator) combatantAdded(e *CombatantAdded) {
	members, ok := c.combats[e.CombatID]
	if !ok {
		members = make(map[string]string)
		c.combats[e.CombatID] = members
	}
	members[e.Combatant.ID] = e.Combatant.ActorID
	c.tracker.Initialize(e.Combatant.ID, c.features.HasBonusReaction(e.Combatant.ActorID))
}

func (c *Coordinator) combatantRemoved(e *CombatantRemoved) {
	if members, ok := c.combats[e.CombatID]; ok {
		delete(members, e.CombatantID)
	}
	c.tracker.Teardown(e.CombatantID)
}

func (c *Coordinator) combatEnded(e *CombatEnded) {
	for id := range c.combats[e.CombatID] {
		c.tracker.Teardown(id)
	}
	delete(c.combats, e.CombatID)
}

// actorFor resolves a combatant to its actor.
func (c *Coordinator) actorFor(combatID, combatantID string) (string, bool) {
	members, ok := c.combats[combatID]
	if !ok {
		return "", false
	}
	actorID, ok := members[combatantID]
	return actorID, ok
}

// transition runs one gated turn transition: the end-of-turn pass for the
// prior combatant's actor, then the turn-start step for the current combatant.
func (c *Coordinator) transition(ctx context.Context, combatID string, round, turn int, combatantID, priorID string) error {
	key := TransitionKey{CombatID: combatID, Round: round, Turn: turn, CombatantID: combatantID}
	if !c.gate.Admit(key) {
		c.logger.Printf("combat: duplicate transition %+v", key)
		trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("duplicate", true))
		return nil
	}

	if priorID != "" {
		if actorID, ok := c.actorFor(combatID, priorID); ok {
			c.endTurn(ctx, priorID, actorID)
		}
	}

	actorID, ok := c.actorFor(combatID, combatantID)
	if !ok {
		c.logger.Printf("combat: unknown combatant %s in combat %s", combatantID, combatID)
		return nil
	}
	return c.StartTurn(ctx, combatantID, actorID)
}

func (c *Coordinator) endTurn(ctx context.Context, combatantID, actorID string) {
	_, span := c.tracer.Start(ctx, "combat.turn_end")
	defer span.End()

	decremented := c.ledger.EndTurn(actorID)
	span.SetAttributes(
		attribute.String("combatant", combatantID),
		attribute.String("actor", actorID),
		attribute.Int("decremented", len(decremented)),
	)
}

// StartTurn runs the turn-start step for one combatant: resync its bonus
// reaction, reset its pips, then lock the actions its conditions cost.
// It bypasses the transition gate.
func (c *Coordinator) StartTurn(ctx context.Context, combatantID, actorID string) error {
	_, span := c.tracer.Start(ctx, "combat.turn_start")
	defer span.End()

	hasBonus := c.features.HasBonusReaction(actorID)
	if !c.tracker.Has(combatantID) {
		c.tracker.Initialize(combatantID, hasBonus)
	} else {
		c.tracker.ResyncBonusReaction(combatantID, hasBonus)
	}

	c.tracker.ResetTurn(combatantID)
	loss := c.ledger.ComputeActionLoss(actorID)
	span.SetAttributes(
		attribute.String("combatant", combatantID),
		attribute.String("actor", actorID),
		attribute.Int("actions_lost", loss.ActionsLost),
		attribute.Bool("incapacitated", loss.FullyIncapacitated),
	)
	if err := c.tracker.ApplyConditionLocks(combatantID, loss); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Combatants returns the combatant-to-actor bindings of a combat.
func (c *Coordinator) Combatants(combatID string) map[string]string {
	members := c.combats[combatID]
	out := make(map[string]string, len(members))
	for k, v := range members {
		out[k] = v
	}
	return out
}
