// Package condition implements the condition ledger: the set of tiered and
// toggle status effects on each actor, the modifiers they contribute, the
// actions they cost at turn start, and the end-of-turn auto-decrement.
package condition

import (
	"cmp"
	"slices"

	"github.com/samdwyer/actiontracker/internal/gamedata"
	"github.com/samdwyer/actiontracker/internal/notify"
)

// MaxActionsLost is the number of action slots a combatant has per turn.
const MaxActionsLost = 3

// Catalog is the read side of the condition registry the ledger needs.
type Catalog interface {
	GetByID(key string) *gamedata.ConditionDef
	AutoDecrementing() []*gamedata.ConditionDef
}

// ActorDirectory resolves actor identity. Unknown actors are ignored by the ledger.
type ActorDirectory interface {
	Lookup(actorID string) (name string, ok bool)
}

// Status is the listing view of one instance.
type Status struct {
	Key    string
	Name   string
	Label  string
	Tier   int
	Active bool
}

// ActionLoss is the turn-start action cost of an actor's active conditions.
type ActionLoss struct {
	ActionsLost        int
	FullyIncapacitated bool
}

// AppliedModifier is a resolved modifier tagged with the condition it came from.
type AppliedModifier struct {
	Condition string
	gamedata.Modifier
}

// Ledger owns condition instances per actor.
type Ledger struct {
	catalog Catalog
	store   RecordStore
	actors  ActorDirectory
	sink    notify.Sink
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithStore sets the record store. Defaults to a MemoryStore.
func WithStore(store RecordStore) Option {
	return func(l *Ledger) { l.store = store }
}

// WithActors restricts the ledger to actors known to dir and uses their display names.
func WithActors(dir ActorDirectory) Option {
	return func(l *Ledger) { l.actors = dir }
}

// WithSink sets the notification sink. Defaults to notify.Discard.
func WithSink(sink notify.Sink) Option {
	return func(l *Ledger) { l.sink = sink }
}

// NewLedger creates a ledger over the given catalog.
func NewLedger(catalog Catalog, opts ...Option) *Ledger {
	l := &Ledger{
		catalog: catalog,
		store:   NewMemoryStore(),
		sink:    notify.Discard,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// resolve returns the actor's display name and whether the actor is known.
func (l *Ledger) resolve(actorID string) (string, bool) {
	if actorID == "" {
		return "", false
	}
	if l.actors == nil {
		return actorID, true
	}
	return l.actors.Lookup(actorID)
}

// Apply sets the condition to tier, clamped to the catalog maximum. Tier 0
// removes it. An existing instance is updated in place and reactivated.
func (l *Ledger) Apply(actorID, key string, tier int) {
	def := l.catalog.GetByID(key)
	if def == nil {
		return
	}
	name, ok := l.resolve(actorID)
	if !ok {
		return
	}
	tier = def.ClampTier(tier)
	if tier == 0 {
		l.remove(actorID, name, def)
		return
	}
	l.store.Upsert(Instance{
		ActorID:   actorID,
		Key:       key,
		Tier:      tier,
		Active:    true,
		Modifiers: def.ModifiersAt(tier),
	})
	l.sink.Notify(&notify.ConditionApplied{
		ActorID:     actorID,
		ActorName:   name,
		Condition:   key,
		Label:       def.Label(tier),
		Tier:        tier,
		Description: def.Description,
	})
}

// Remove deletes the condition from the actor if present.
func (l *Ledger) Remove(actorID, key string) {
	def := l.catalog.GetByID(key)
	if def == nil {
		return
	}
	name, ok := l.resolve(actorID)
	if !ok {
		return
	}
	l.remove(actorID, name, def)
}

func (l *Ledger) remove(actorID, name string, def *gamedata.ConditionDef) {
	if !l.store.Delete(actorID, def.Key) {
		return
	}
	l.sink.Notify(&notify.ConditionRemoved{
		ActorID:   actorID,
		ActorName: name,
		Condition: def.Key,
		Name:      def.Name,
	})
}

// Adjust adds delta to the current tier (0 if absent), flooring at 0.
func (l *Ledger) Adjust(actorID, key string, delta int) {
	if l.catalog.GetByID(key) == nil {
		return
	}
	l.Apply(actorID, key, max(l.Tier(actorID, key)+delta, 0))
}

// Tier returns the current tier, or 0 if the condition is absent.
func (l *Ledger) Tier(actorID, key string) int {
	inst, ok := l.store.Find(actorID, key)
	if !ok {
		return 0
	}
	return inst.Tier
}

// SetActive suspends or resumes an instance without deleting it.
// It reports whether an instance was found.
func (l *Ledger) SetActive(actorID, key string, active bool) bool {
	inst, ok := l.store.Find(actorID, key)
	if !ok {
		return false
	}
	inst.Active = active
	l.store.Upsert(inst)
	return true
}

// ListActive returns every instance on the actor, sorted by condition key.
// Suspended instances are included with Active false.
func (l *Ledger) ListActive(actorID string) []Status {
	instances := l.store.List(actorID)
	out := make([]Status, 0, len(instances))
	for _, inst := range instances {
		st := Status{Key: inst.Key, Tier: inst.Tier, Active: inst.Active, Name: inst.Key, Label: inst.Key}
		if def := l.catalog.GetByID(inst.Key); def != nil {
			st.Name = def.Name
			st.Label = def.Label(inst.Tier)
		}
		out = append(out, st)
	}
	slices.SortFunc(out, func(a, b Status) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// Label returns the display label for a condition at tier.
func (l *Ledger) Label(key string, tier int) string {
	def := l.catalog.GetByID(key)
	if def == nil {
		return key
	}
	return def.Label(tier)
}

// ComputeActionLoss derives the turn-start action cost from the actor's
// active instances. All instances are accumulated before any rule is
// evaluated, so the result does not depend on instance order.
func (l *Ledger) ComputeActionLoss(actorID string) ActionLoss {
	var (
		additive      int
		floor         bool
		incapacitated bool
	)
	for _, inst := range l.store.List(actorID) {
		if !inst.Active || inst.Tier <= 0 {
			continue
		}
		def := l.catalog.GetByID(inst.Key)
		if def == nil {
			continue
		}
		switch def.ActionLoss {
		case gamedata.LossAdditive:
			additive += inst.Tier
		case gamedata.LossFloor:
			floor = true
		case gamedata.LossIncapacitate:
			incapacitated = true
		}
	}

	if incapacitated {
		return ActionLoss{ActionsLost: MaxActionsLost, FullyIncapacitated: true}
	}
	base := 0
	if floor {
		base = 2
	}
	return ActionLoss{ActionsLost: min(max(base, additive), MaxActionsLost)}
}

// EndTurn runs the auto-decrement pass for the actor whose turn just ended
// and returns the keys it decremented, in catalog order.
func (l *Ledger) EndTurn(actorID string) []string {
	name, ok := l.resolve(actorID)
	if !ok {
		return nil
	}
	var changed []string
	for _, def := range l.catalog.AutoDecrementing() {
		inst, found := l.store.Find(actorID, def.Key)
		if !found || !inst.Active || inst.Tier <= 0 {
			continue
		}
		changed = append(changed, def.Key)

		tier := inst.Tier - 1
		if tier == 0 {
			l.remove(actorID, name, def)
			continue
		}
		inst.Tier = tier
		inst.Modifiers = def.ModifiersAt(tier)
		l.store.Upsert(inst)
		l.sink.Notify(&notify.ConditionDecremented{
			ActorID:   actorID,
			ActorName: name,
			Condition: def.Key,
			Label:     def.Label(tier),
			Tier:      tier,
		})
	}
	return changed
}

// Modifiers returns every modifier contributed by the actor's active instances.
func (l *Ledger) Modifiers(actorID string) []AppliedModifier {
	var out []AppliedModifier
	for _, inst := range l.store.List(actorID) {
		if !inst.Active {
			continue
		}
		for _, m := range inst.Modifiers {
			out = append(out, AppliedModifier{Condition: inst.Key, Modifier: m})
		}
	}
	return out
}

// Totals sums the active modifiers per target. Penalty-class modifiers on the
// same target do not stack, only the most severe applies; untyped ones always stack.
func (l *Ledger) Totals(actorID string) map[string]int {
	worst := make(map[string]int)
	untyped := make(map[string]int)
	for _, m := range l.Modifiers(actorID) {
		switch m.Stacking {
		case gamedata.StackUntyped:
			untyped[m.Target] += m.Magnitude
		default:
			if cur, ok := worst[m.Target]; !ok || m.Magnitude < cur {
				worst[m.Target] = m.Magnitude
			}
		}
	}

	totals := make(map[string]int, len(worst)+len(untyped))
	for target, v := range worst {
		totals[target] += v
	}
	for target, v := range untyped {
		totals[target] += v
	}
	return totals
}
