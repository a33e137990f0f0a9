package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// DefaultBonusReactionRule grants a bonus reaction to actors with Combat Reflexes.
const DefaultBonusReactionRule = `actor.feats.exists(f, f.lowerAscii().contains("combat reflexes"))`

// ActorSource supplies the facts a rule is evaluated over.
type ActorSource interface {
	Lookup(actorID string) (name string, ok bool)
	Feats(actorID string) ([]string, bool)
}

// BonusReactionRule decides whether an actor has a bonus reaction slot.
type BonusReactionRule struct {
	expr   string
	prog   cel.Program
	actors ActorSource
}

// NewBonusReactionRule compiles expr. An empty expr uses DefaultBonusReactionRule.
func NewBonusReactionRule(reg *Registry, expr string, actors ActorSource) (*BonusReactionRule, error) {
	if expr == "" {
		expr = DefaultBonusReactionRule
	}
	prog, err := reg.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("bonus reaction rule: %w", err)
	}
	return &BonusReactionRule{expr: expr, prog: prog, actors: actors}, nil
}

// Expression returns the rule source.
func (r *BonusReactionRule) Expression() string {
	return r.expr
}

// HasBonusReaction evaluates the rule for the actor. Unknown actors and
// evaluation failures yield false.
func (r *BonusReactionRule) HasBonusReaction(actorID string) bool {
	name, ok := r.actors.Lookup(actorID)
	if !ok {
		return false
	}
	feats, _ := r.actors.Feats(actorID)
	if feats == nil {
		feats = []string{}
	}
	out, _, err := r.prog.Eval(map[string]any{
		"actor": map[string]any{
			"id":    actorID,
			"name":  name,
			"feats": feats,
		},
	})
	if err != nil {
		return false
	}
	has, _ := out.Value().(bool)
	return has
}
