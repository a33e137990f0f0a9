package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEncounter(t *testing.T) {
	enc, err := LoadEncounter("skirmish")
	require.NoError(t, err)

	assert.Equal(t, "Goblin Ambush", enc.Name)
	require.Len(t, enc.Combatants, 4)

	valeros := enc.Combatants[0]
	assert.Equal(t, "cb-valeros", valeros.CombatantID())
	assert.Equal(t, 'V', valeros.GlyphRune())
	assert.Contains(t, valeros.Feats, "Combat Reflexes")

	ezren := enc.Combatants[2]
	assert.Equal(t, []string{"slowed", "stunned"}, ezren.ConditionKeys())
	assert.Equal(t, 2, ezren.Conditions["stunned"])

	_, err = LoadEncounter("skirmish.yaml")
	assert.NoError(t, err)

	assert.Contains(t, Encounters(), "skirmish")
}

func TestLoadEncounterMissing(t *testing.T) {
	_, err := LoadEncounter("dragon")
	assert.Error(t, err)

	_, err = LoadEncounterFile("/nonexistent/encounter.yaml")
	assert.Error(t, err)
}

func TestParseEncounterValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no combatants", "name: Empty\n", "no combatants"},
		{"missing id", "combatants:\n  - name: Nobody\n", "missing id"},
		{"duplicate id", "combatants:\n  - id: a\n  - id: a\n", "duplicate id"},
		{"duplicate combatant", "combatants:\n  - id: a\n    combatant: x\n  - id: b\n    combatant: x\n", "duplicate combatant id"},
		{"unknown field", "combatants:\n  - id: a\n    hp: 10\n", "decode encounter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEncounter(strings.NewReader(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseEncounterDefaults(t *testing.T) {
	enc, err := ParseEncounter(strings.NewReader("combatants:\n  - id: wolf\n    combatant: w1\n"))
	require.NoError(t, err)

	c := enc.Combatants[0]
	assert.Equal(t, "wolf", c.Name)
	assert.Equal(t, "w1", c.CombatantID())
	assert.Equal(t, rune(0), c.GlyphRune())
	assert.Empty(t, c.ConditionKeys())
}
