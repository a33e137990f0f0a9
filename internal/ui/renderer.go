package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/actiontracker/internal/pips"
)

// Canvas is the drawing surface the renderer needs. *Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
	Show()
	Size() (width, height int)
}

// Pip glyphs.
const (
	GlyphAvailable = '◆'
	GlyphSpent     = '◇'
	GlyphLocked    = '✕'
)

// Badge is a condition label drawn after a pip row.
type Badge struct {
	Label string
	Color tcell.Color
}

// Row is one combatant line of the tracker.
type Row struct {
	Name       string
	Glyph      rune
	Color      tcell.Color
	Current    bool // combatant whose turn it is
	Selected   bool // combatant the keyboard acts on
	Missing    bool // no pip state, e.g. not yet in combat
	Slots      [pips.ActionSlots]pips.SlotState
	Reaction   bool
	Bonus      *bool
	Conditions []Badge
}

// View is everything drawn in one frame.
type View struct {
	Title   string
	Status  string
	Rows    []Row
	Message string
}

// Layout constants.
const (
	rowsTop   = 2
	nameWidth = 16
	pipsLeft  = 4 + nameWidth
)

// HelpText lists the tracker key bindings.
const HelpText = "n next turn  1-3 toggle action  r reaction  b bonus  up/down select  e end  q quit"

// Renderer handles drawing the tracker to a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws a full frame.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()
	_, height := r.canvas.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	x := r.text(0, 0, v.Title, titleStyle)
	r.text(x+2, 0, v.Status, tcell.StyleDefault.Foreground(tcell.ColorGray))

	for i, row := range v.Rows {
		r.renderRow(rowsTop+i, row)
	}

	if height >= 2 {
		r.text(0, height-2, v.Message, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		r.text(0, height-1, HelpText, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	}

	r.canvas.Show()
}

// renderRow draws one combatant: marker, glyph, name, pips, then condition badges.
func (r *Renderer) renderRow(y int, row Row) {
	base := tcell.StyleDefault
	if row.Selected {
		base = base.Reverse(true)
	}

	marker := ' '
	if row.Current {
		marker = '>'
	}
	r.canvas.SetContent(0, y, marker, base.Foreground(tcell.ColorYellow))
	r.canvas.SetContent(2, y, row.Glyph, base.Foreground(row.Color).Bold(true))
	r.text(4, y, truncate(row.Name, nameWidth-1), base)

	x := pipsLeft
	if row.Missing {
		r.text(x, y, "-", base.Foreground(tcell.ColorDarkGray))
		return
	}
	for _, slot := range row.Slots {
		glyph, style := slotGlyph(slot)
		r.canvas.SetContent(x, y, glyph, style)
		x += 2
	}
	r.canvas.SetContent(x, y, '|', tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	x += 2
	r.canvas.SetContent(x, y, reactionGlyph(row.Reaction), tcell.StyleDefault.Foreground(tcell.ColorAqua))
	x += 2
	if row.Bonus != nil {
		x = r.text(x, y, fmt.Sprintf("[%c]", reactionGlyph(*row.Bonus)), tcell.StyleDefault.Foreground(tcell.ColorFuchsia))
	}
	x++

	for _, badge := range row.Conditions {
		x = r.text(x+1, y, badge.Label, tcell.StyleDefault.Foreground(badge.Color))
	}
}

// slotGlyph returns the glyph and style for an action slot.
func slotGlyph(s pips.SlotState) (rune, tcell.Style) {
	switch s {
	case pips.ManuallySpent:
		return GlyphSpent, tcell.StyleDefault.Foreground(tcell.ColorGray)
	case pips.ConditionLocked:
		return GlyphLocked, tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return GlyphAvailable, tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

func reactionGlyph(available bool) rune {
	if available {
		return GlyphAvailable
	}
	return GlyphSpent
}

// text draws s starting at (x, y) and returns the column after it.
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
