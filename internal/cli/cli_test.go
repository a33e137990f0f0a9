package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/actiontracker/internal/config"
	"github.com/samdwyer/actiontracker/internal/gamedata"
	"github.com/samdwyer/actiontracker/internal/notify"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewAppWiring(t *testing.T) {
	def, err := resolveEncounter("skirmish")
	require.NoError(t, err)

	rec := &notify.Recorder{}
	app, err := NewApp(testConfig(t), def, nil, rec)
	require.NoError(t, err)

	require.NoError(t, app.Encounter.Start(context.Background()))

	assert.Equal(t, 4, app.Roster.Count())
	assert.True(t, app.Bonus.HasBonusReaction("valeros"))
	assert.False(t, app.Bonus.HasBonusReaction("ezren"))
	assert.Equal(t, 2, app.Ledger.Tier("goblin-boss", "frightened"))
	assert.Contains(t, rec.Types(), notify.EventConditionApplied)

	sum, ok := app.Tracker.Summary("cb-valeros")
	require.True(t, ok)
	require.NotNil(t, sum.BonusReactionAvailable)
	assert.Equal(t, 3, sum.ActionsRemaining)

	deps := app.Deps()
	assert.Same(t, app.Encounter, deps.Encounter)
}

func TestNewAppRejectsBadRule(t *testing.T) {
	def, err := resolveEncounter("skirmish")
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.BonusReactionRule = "actor.feats +"
	_, err = NewApp(cfg, def, nil, nil)
	assert.Error(t, err)
}

func TestRunScript(t *testing.T) {
	script := `
# goblin ambush, first round
start
state cb-valeros
spend actions 2 by: cb-valeros
next
next
state cb-ezren
conditions of: ezren
tier frightened of: goblin-boss
`
	var out bytes.Buffer
	err := runScript(context.Background(), testConfig(t), "skirmish", strings.NewReader(script), &out)
	require.NoError(t, err)

	got := out.String()
	for _, want := range []string{
		"round 1 turn 1: cb-valeros",
		"cb-valeros: actions 3/3 reaction yes bonus yes locked 0",
		"cb-valeros: actions 1/3 reaction yes bonus yes locked 0",
		"round 1 turn 2: cb-goblin-boss",
		"  * Goblin Boss: Frightened 1 (end of turn)",
		"round 1 turn 3: cb-ezren",
		"cb-ezren: actions 0/3 reaction yes bonus - locked 3",
		"ezren: Slowed 1, Stunned 2",
		"goblin-boss frightened 1",
	} {
		assert.Contains(t, got, want)
	}
}

func TestRunScriptNextStartsEncounter(t *testing.T) {
	var out bytes.Buffer
	err := runScript(context.Background(), testConfig(t), "skirmish", strings.NewReader("next\norder\nend\n"), &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "round 1 turn 1: cb-valeros")
	assert.Contains(t, got, "> 1. cb-valeros (valeros)")
	assert.Contains(t, got, "  4. cb-goblin-archer (goblin-archer)")
	assert.Contains(t, got, "encounter Goblin Ambush ended")
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"bad macro", "start\nfrobnicate valeros\n", "line 2:"},
		{"end before start", "end\n", "line 1:"},
		{"double start", "start\n\nstart\n", "line 3:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runScript(context.Background(), testConfig(t), "skirmish", strings.NewReader(tt.script), &out)
			require.Error(t, err)
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("runScript() error = %q, want prefix %q", err, tt.want)
			}
		})
	}
}

func TestResolveEncounterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.yaml")
	doc := "name: Duel\ncombatants:\n  - id: a\n    name: A\n    side: party\n  - id: b\n    name: B\n    side: enemy\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	def, err := resolveEncounter(path)
	require.NoError(t, err)
	assert.Equal(t, "Duel", def.Name)

	_, err = resolveEncounter(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteConditions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeConditions(&out, gamedata.MustLoadConditionRegistry()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 16)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Regexp(t, `^frightened\s+Frightened\s+tiered\s+4\s+none\s+yes$`, lines[1])
}

func TestWriteEncounters(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeEncounters(&out))
	assert.Contains(t, out.String(), "skirmish")
	assert.Contains(t, out.String(), "Goblin Ambush")
}

func TestVersionCommand(t *testing.T) {
	appConfig = testConfig(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "actiontracker version")
	assert.Contains(t, out.String(), "OS/Arch:")
}
