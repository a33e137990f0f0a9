package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/actiontracker/internal/entity"
	"github.com/samdwyer/actiontracker/internal/gamedata"
	"github.com/samdwyer/actiontracker/internal/pips"
	"github.com/samdwyer/actiontracker/internal/telemetry"
	"github.com/samdwyer/actiontracker/internal/ui"
)

// Tracker is the pip surface the interactive loop drives.
type Tracker interface {
	PipReader
	ToggleActionSlot(combatantID string, index int) bool
	ToggleReactionSlot(combatantID string) bool
	ToggleBonusReactionSlot(combatantID string) bool
}

// Deps are the components the interactive loop works over.
type Deps struct {
	Encounter  *Encounter
	Roster     *entity.Roster
	Conditions ConditionLister
	Tracker    Tracker
	Catalog    *gamedata.ConditionRegistry
}

// Game holds the interactive tracker state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	deps     Deps
	selected int
	message  string
	running  bool
	pending  bool
}

// New creates a new tracker loop on a fresh terminal screen.
func New(cfg Config, deps Deps) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		deps:     deps,
		running:  true,
	}, nil
}

// Run starts the encounter if needed and executes the main loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	if g.deps.Encounter.Phase() == PhaseSetup {
		if err := g.deps.Encounter.Start(ctx); err != nil {
			span.End()
			return err
		}
	}
	span.SetAttributes(
		attribute.String("combat_id", g.deps.Encounter.ID),
		attribute.Int("combatants", len(g.deps.Encounter.Order())),
	)
	span.End()

	g.render()
	for g.running {
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	view := BuildView(g.deps.Encounter, g.deps.Roster, g.deps.Conditions, g.deps.Tracker, g.deps.Catalog, g.selected)
	view.Message = g.message
	g.renderer.Render(view)
}

// scheduleRefresh posts a redraw into the event loop after the refresh delay.
// Repeated calls before the redraw lands collapse into one.
func (g *Game) scheduleRefresh() {
	if g.pending {
		return
	}
	g.pending = true
	time.AfterFunc(g.cfg.RefreshDelay, func() {
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventInterrupt:
		g.pending = false
		g.render()
	case *tcell.EventResize:
		g.screen.Sync()
		g.render()
	case nil:
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyUp:
		g.moveSelection(-1)
	case tcell.KeyDown:
		g.moveSelection(1)
	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
	g.scheduleRefresh()
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	enc := g.deps.Encounter
	switch r {
	case 'q', 'Q':
		g.running = false
	case 'n', 'N':
		if err := enc.Next(ctx); err != nil {
			g.message = err.Error()
			return
		}
		g.selected = enc.Turn()
		if cur, ok := enc.Current(); ok {
			g.message = fmt.Sprintf("Round %d: %s's turn", enc.Round(), g.actorName(cur.ActorID))
		}
	case 'e', 'E':
		if err := enc.End(ctx); err != nil {
			g.message = err.Error()
			return
		}
		g.message = "Combat ended"
	case '1', '2', '3':
		id, name := g.selectedCombatant()
		idx := int(r - '1')
		if !g.deps.Tracker.ToggleActionSlot(id, idx) {
			g.message = fmt.Sprintf("%s: action %d is locked by a condition", name, idx+1)
			return
		}
		g.message = g.describeSlot(id, name, idx)
	case 'r', 'R':
		id, name := g.selectedCombatant()
		if g.deps.Tracker.ToggleReactionSlot(id) {
			g.message = name + ": reaction toggled"
		}
	case 'b', 'B':
		id, name := g.selectedCombatant()
		if g.deps.Tracker.ToggleBonusReactionSlot(id) {
			g.message = name + ": bonus reaction toggled"
		} else {
			g.message = name + " has no bonus reaction"
		}
	}
}

func (g *Game) moveSelection(delta int) {
	n := len(g.deps.Encounter.Order())
	if n == 0 {
		return
	}
	g.selected = (g.selected + delta + n) % n
}

func (g *Game) selectedCombatant() (id, name string) {
	order := g.deps.Encounter.Order()
	if g.selected < 0 || g.selected >= len(order) {
		return "", ""
	}
	cb := order[g.selected]
	return cb.ID, g.actorName(cb.ActorID)
}

func (g *Game) actorName(actorID string) string {
	if a := g.deps.Roster.Get(actorID); a != nil {
		return a.Name
	}
	return actorID
}

func (g *Game) describeSlot(id, name string, idx int) string {
	slots, ok := g.deps.Tracker.SlotStates(id)
	if !ok {
		return name + " is not in combat"
	}
	if slots[idx] == pips.Available {
		return fmt.Sprintf("%s: action %d restored", name, idx+1)
	}
	return fmt.Sprintf("%s: action %d spent", name, idx+1)
}
