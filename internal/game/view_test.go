package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/actiontracker/internal/pips"
)

func TestBuildView(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	v := BuildView(h.enc, h.roster, h.ledger, h.tracker, h.catalog, 0)
	assert.Equal(t, "Test Fight", v.Title)
	assert.Equal(t, "setup", v.Status)
	require.Len(t, v.Rows, 3)
	assert.True(t, v.Rows[0].Missing)

	require.NoError(t, h.enc.Start(ctx))
	require.NoError(t, h.enc.Next(ctx))
	require.NoError(t, h.enc.Next(ctx))
	h.ledger.Apply("ezren", "fatigued", 1)
	h.ledger.SetActive("ezren", "fatigued", false)

	v = BuildView(h.enc, h.roster, h.ledger, h.tracker, h.catalog, 1)
	assert.Equal(t, "Round 1", v.Status)

	valeros, goblin, ezren := v.Rows[0], v.Rows[1], v.Rows[2]
	assert.Equal(t, "Valeros", valeros.Name)
	assert.Equal(t, 'V', valeros.Glyph)
	require.NotNil(t, valeros.Bonus, "combat reflexes grants a bonus reaction")
	assert.Nil(t, goblin.Bonus)
	assert.True(t, goblin.Selected)
	assert.Equal(t, 'g', goblin.Glyph)

	assert.True(t, ezren.Current)
	assert.False(t, valeros.Current)
	assert.Equal(t, [3]pips.SlotState{pips.ConditionLocked, pips.ConditionLocked, pips.ConditionLocked}, ezren.Slots)

	labels := make([]string, 0, len(ezren.Conditions))
	for _, b := range ezren.Conditions {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Slowed 1", "Stunned 2"}, labels, "suspended conditions are hidden")
	assert.Equal(t, h.catalog.GetByID("slowed").TCellColor(), ezren.Conditions[0].Color)
}
