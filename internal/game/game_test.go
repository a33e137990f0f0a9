package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/actiontracker/internal/pips"
)

func newTestGame(t *testing.T) (*Game, *harness) {
	t.Helper()
	h := newHarness(t)
	require.NoError(t, h.enc.Start(context.Background()))
	g := &Game{
		cfg: DefaultConfig(),
		deps: Deps{
			Encounter:  h.enc,
			Roster:     h.roster,
			Conditions: h.ledger,
			Tracker:    h.tracker,
			Catalog:    h.catalog,
		},
		running: true,
	}
	return g, h
}

func TestHandleRuneTogglesPips(t *testing.T) {
	g, h := newTestGame(t)
	ctx := context.Background()

	g.handleRune(ctx, '2')
	assert.Equal(t, "Valeros: action 2 spent", g.message)
	slots, _ := h.tracker.SlotStates("cb-valeros")
	assert.Equal(t, pips.ManuallySpent, slots[1])

	g.handleRune(ctx, '2')
	assert.Equal(t, "Valeros: action 2 restored", g.message)

	g.handleRune(ctx, 'r')
	sum, _ := h.tracker.Summary("cb-valeros")
	assert.False(t, sum.ReactionAvailable)

	g.handleRune(ctx, 'b')
	assert.Equal(t, "Valeros: bonus reaction toggled", g.message)

	g.moveSelection(1)
	g.handleRune(ctx, 'b')
	assert.Equal(t, "Goblin has no bonus reaction", g.message)
}

func TestHandleRuneRespectsLocks(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()

	g.handleRune(ctx, 'n')
	g.handleRune(ctx, 'n')
	assert.Equal(t, 2, g.selected, "selection follows the turn")
	assert.Equal(t, "Round 1: Ezren's turn", g.message)

	g.handleRune(ctx, '1')
	assert.Equal(t, "Ezren: action 1 is locked by a condition", g.message)
}

func TestHandleRuneEndAndQuit(t *testing.T) {
	g, h := newTestGame(t)
	ctx := context.Background()

	g.handleRune(ctx, 'e')
	assert.Equal(t, "Combat ended", g.message)
	assert.Equal(t, PhaseEnded, h.enc.Phase())

	g.handleRune(ctx, 'n')
	assert.Equal(t, ErrNotActive.Error(), g.message)

	g.handleRune(ctx, 'q')
	assert.False(t, g.running)
}

func TestMoveSelectionWraps(t *testing.T) {
	g, _ := newTestGame(t)

	g.moveSelection(-1)
	assert.Equal(t, 2, g.selected)
	g.moveSelection(1)
	assert.Equal(t, 0, g.selected)
}
