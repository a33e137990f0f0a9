package gamedata

// =============================================================================
// CONDITION CATALOG
// =============================================================================
//
// Conditions are data-driven status effects loaded from conditions.yaml at
// startup. A definition never carries code: the modifiers a condition applies
// at a given tier are computed from its modifier rows as
//
//	magnitude = flat + per_tier * tier
//
// Kinds:
//   - tiered: severity 1..max_tier (max_tier between 1 and 4)
//   - toggle: present or absent, max_tier fixed at 1
//
// Action loss classes (read by the ledger when a turn starts):
//   - additive:     tier adds to the number of actions lost (stunned, slowed)
//   - floor:        at most one action remains, tier ignored (staggered, nauseated)
//   - incapacitate: no actions and no reactions (paralyzed)
//
// Stacking classes:
//   - penalty: penalties on the same target do not stack, the worst applies
//   - untyped: always stacks

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// MaxTier is the highest severity any tiered condition may declare.
const MaxTier = 4

// ConditionKind distinguishes tiered conditions from toggles.
type ConditionKind string

const (
	KindTiered ConditionKind = "tiered"
	KindToggle ConditionKind = "toggle"
)

// ActionLossClass describes how a condition contributes to lost actions.
type ActionLossClass string

const (
	LossNone         ActionLossClass = "none"
	LossAdditive     ActionLossClass = "additive"
	LossFloor        ActionLossClass = "floor"
	LossIncapacitate ActionLossClass = "incapacitate"
)

// Stacking is the stacking class of a numeric modifier.
type Stacking string

const (
	StackPenalty Stacking = "penalty"
	StackUntyped Stacking = "untyped"
)

// ModifierDef is one modifier row of a condition definition.
type ModifierDef struct {
	Target   string   `yaml:"target"`   // Roll target (e.g., "attack", "ac", "dex")
	PerTier  int      `yaml:"per_tier"` // Added once per tier
	Flat     int      `yaml:"flat"`     // Added regardless of tier
	Stacking Stacking `yaml:"stacking"` // Defaults to penalty
}

// Modifier is a resolved numeric modifier at a concrete tier.
type Modifier struct {
	Target    string
	Magnitude int
	Stacking  Stacking
}

// ConditionDef defines a condition loaded from YAML.
type ConditionDef struct {
	Key           string          `yaml:"key"`
	Name          string          `yaml:"name"`
	Kind          ConditionKind   `yaml:"kind"`
	MaxTier       int             `yaml:"max_tier"`
	AutoDecrement bool            `yaml:"auto_decrement"`
	Description   string          `yaml:"description"`
	Color         string          `yaml:"color"`
	ActionLoss    ActionLossClass `yaml:"action_loss"`
	Modifiers     []ModifierDef   `yaml:"modifiers"`
}

// Validate checks the catalog invariants for a single definition.
func (d *ConditionDef) Validate() error {
	if d.Key == "" {
		return errors.New("condition without key")
	}
	switch d.Kind {
	case KindTiered:
		if d.MaxTier < 1 || d.MaxTier > MaxTier {
			return fmt.Errorf("condition %s: max_tier %d outside 1..%d", d.Key, d.MaxTier, MaxTier)
		}
	case KindToggle:
		if d.MaxTier != 1 {
			return fmt.Errorf("condition %s: toggle must have max_tier 1, got %d", d.Key, d.MaxTier)
		}
	default:
		return fmt.Errorf("condition %s: unknown kind %q", d.Key, d.Kind)
	}
	switch d.ActionLoss {
	case LossNone, LossAdditive, LossFloor, LossIncapacitate:
	default:
		return fmt.Errorf("condition %s: unknown action_loss %q", d.Key, d.ActionLoss)
	}
	for _, m := range d.Modifiers {
		if m.Target == "" {
			return fmt.Errorf("condition %s: modifier without target", d.Key)
		}
		if m.Stacking != StackPenalty && m.Stacking != StackUntyped {
			return fmt.Errorf("condition %s: unknown stacking %q", d.Key, m.Stacking)
		}
	}
	return nil
}

// applyDefaults fills optional fields left empty in the YAML.
func (d *ConditionDef) applyDefaults() {
	if d.Kind == KindToggle && d.MaxTier == 0 {
		d.MaxTier = 1
	}
	if d.ActionLoss == "" {
		d.ActionLoss = LossNone
	}
	for i := range d.Modifiers {
		if d.Modifiers[i].Stacking == "" {
			d.Modifiers[i].Stacking = StackPenalty
		}
	}
}

// ClampTier bounds a requested tier to [0, MaxTier].
func (d *ConditionDef) ClampTier(tier int) int {
	if tier < 0 {
		return 0
	}
	if tier > d.MaxTier {
		return d.MaxTier
	}
	return tier
}

// ModifiersAt resolves the modifier rows at the given tier.
// A tier of zero or less yields no modifiers.
func (d *ConditionDef) ModifiersAt(tier int) []Modifier {
	tier = d.ClampTier(tier)
	if tier == 0 || len(d.Modifiers) == 0 {
		return nil
	}
	result := make([]Modifier, 0, len(d.Modifiers))
	for _, m := range d.Modifiers {
		result = append(result, Modifier{
			Target:    m.Target,
			Magnitude: m.Flat + m.PerTier*tier,
			Stacking:  m.Stacking,
		})
	}
	return result
}

// Label returns the display label: the bare name for toggles, "Name N" for tiered.
func (d *ConditionDef) Label(tier int) string {
	if d.Kind == KindToggle {
		return d.Name
	}
	return d.Name + " " + strconv.Itoa(tier)
}

// TCellColor returns the display color as a tcell.Color.
func (d *ConditionDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ConditionsFile represents the structure of conditions.yaml.
type ConditionsFile struct {
	Conditions []ConditionDef `yaml:"conditions"`
}

// LoadConditions loads condition definitions from the embedded conditions.yaml file.
func LoadConditions() ([]ConditionDef, error) {
	file, err := Load[ConditionsFile]("conditions.yaml")
	if err != nil {
		return nil, err
	}
	return prepare(file.Conditions)
}

// prepare applies defaults and validates every definition, rejecting duplicates.
func prepare(defs []ConditionDef) ([]ConditionDef, error) {
	seen := make(map[string]bool, len(defs))
	for i := range defs {
		defs[i].applyDefaults()
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		if seen[defs[i].Key] {
			return nil, fmt.Errorf("duplicate condition key %s", defs[i].Key)
		}
		seen[defs[i].Key] = true
	}
	return defs, nil
}
