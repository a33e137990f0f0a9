package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/actiontracker/internal/condition"
	"github.com/samdwyer/actiontracker/internal/entity"
	"github.com/samdwyer/actiontracker/internal/gamedata"
	"github.com/samdwyer/actiontracker/internal/pips"
	"github.com/samdwyer/actiontracker/internal/ui"
)

// ConditionLister lists an actor's conditions for display.
type ConditionLister interface {
	ListActive(actorID string) []condition.Status
}

// PipReader reads pip state for display.
type PipReader interface {
	Summary(combatantID string) (pips.Summary, bool)
	SlotStates(combatantID string) ([pips.ActionSlots]pips.SlotState, bool)
}

// BuildView assembles one frame from the encounter and the current state.
// Suspended conditions are not shown.
func BuildView(enc *Encounter, roster *entity.Roster, conditions ConditionLister, tracker PipReader, catalog *gamedata.ConditionRegistry, selected int) ui.View {
	v := ui.View{Title: enc.Name}
	switch enc.Phase() {
	case PhaseActive:
		v.Status = fmt.Sprintf("Round %d", enc.Round())
	default:
		v.Status = enc.Phase().String()
	}

	current, _ := enc.Current()
	for i, cb := range enc.Order() {
		row := ui.Row{
			Name:     cb.ActorID,
			Glyph:    '?',
			Color:    tcell.ColorWhite,
			Current:  enc.Phase() == PhaseActive && cb.ID == current.ID,
			Selected: i == selected,
		}
		if actor := roster.Get(cb.ActorID); actor != nil {
			row.Name = actor.Name
			row.Glyph = actor.Symbol
			row.Color = sideColor(actor.Side)
		}

		if slots, ok := tracker.SlotStates(cb.ID); ok {
			row.Slots = slots
			sum, _ := tracker.Summary(cb.ID)
			row.Reaction = sum.ReactionAvailable
			row.Bonus = sum.BonusReactionAvailable
		} else {
			row.Missing = true
		}

		for _, st := range conditions.ListActive(cb.ActorID) {
			if !st.Active {
				continue
			}
			badge := ui.Badge{Label: st.Label, Color: tcell.ColorWhite}
			if def := catalog.GetByID(st.Key); def != nil {
				badge.Color = def.TCellColor()
			}
			row.Conditions = append(row.Conditions, badge)
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

func sideColor(side entity.Side) tcell.Color {
	switch side {
	case entity.SideParty:
		return tcell.ColorAqua
	case entity.SideEnemy:
		return tcell.ColorRed
	default:
		return tcell.ColorWhite
	}
}
