package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actor struct {
	name  string
	feats []string
}

type actors map[string]actor

func (a actors) Lookup(id string) (string, bool) {
	act, ok := a[id]
	return act.name, ok
}

func (a actors) Feats(id string) ([]string, bool) {
	act, ok := a[id]
	return act.feats, ok
}

func TestRegistryEval(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	t.Run("string extension", func(t *testing.T) {
		ctx := map[string]any{"actor": map[string]any{"name": "VALEROS"}}
		out, err := registry.Eval("actor.name.lowerAscii() == 'valeros'", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("compile error", func(t *testing.T) {
		_, err := registry.Eval("actor.name ==", map[string]any{})
		assert.Error(t, err)
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := registry.Compile("target.name == 'x'")
		assert.Error(t, err)
	})
}

func TestBonusReactionRule(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	roster := actors{
		"fighter": {name: "Valeros", feats: []string{"Power Attack", "Combat Reflexes"}},
		"shouty":  {name: "Harsk", feats: []string{"COMBAT REFLEXES (Fighter)"}},
		"wizard":  {name: "Ezren", feats: []string{"Reach Spell"}},
		"nobody":  {name: "Commoner"},
	}

	tests := []struct {
		name    string
		expr    string
		actorID string
		want    bool
	}{
		{"default has feat", "", "fighter", true},
		{"default case insensitive", "", "shouty", true},
		{"default lacks feat", "", "wizard", false},
		{"default no feats", "", "nobody", false},
		{"unknown actor", "", "ghost", false},
		{"custom rule", "actor.feats.exists(f, f == 'Reach Spell')", "wizard", true},
		{"custom rule by name", "actor.name.startsWith('Val')", "fighter", true},
		{"non-bool result", "size(actor.feats)", "fighter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewBonusReactionRule(registry, tt.expr, roster)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.HasBonusReaction(tt.actorID))
		})
	}
}

func TestBonusReactionRuleRejectsBadExpression(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	_, err = NewBonusReactionRule(registry, "actor.feats.exists(", actors{})
	assert.ErrorContains(t, err, "bonus reaction rule")

	rule, err := NewBonusReactionRule(registry, "", actors{})
	require.NoError(t, err)
	assert.Equal(t, DefaultBonusReactionRule, rule.Expression())
}
