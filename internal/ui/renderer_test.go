package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/actiontracker/internal/pips"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{r, style}
}
func (c *fakeCanvas) Clear()           { c.cells = make(map[[2]int]cell) }
func (c *fakeCanvas) Show()            { c.shown++ }
func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }
func (c *fakeCanvas) at(x, y int) rune { return c.cells[[2]int{x, y}].r }

func (c *fakeCanvas) line(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		r := c.at(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderRow(t *testing.T) {
	canvas := newFakeCanvas(100, 10)
	bonus := true
	NewRenderer(canvas).Render(View{
		Title:  "Goblin Ambush",
		Status: "Round 2",
		Rows: []Row{
			{
				Name:     "Valeros",
				Glyph:    'V',
				Current:  true,
				Slots:    [3]pips.SlotState{pips.ConditionLocked, pips.ManuallySpent, pips.Available},
				Reaction: true,
				Bonus:    &bonus,
				Conditions: []Badge{
					{Label: "Frightened 2", Color: tcell.ColorOlive},
					{Label: "Slowed 1", Color: tcell.ColorBlue},
				},
			},
			{Name: "Goblin Archer With A Long Name", Glyph: 'a', Missing: true},
		},
		Message: "Valeros spent an action",
	})

	assert.Equal(t, "Goblin Ambush  Round 2", canvas.line(0))
	assert.Equal(t, "> V Valeros         ✕ ◇ ◆ | ◆ [◆]  Frightened 2 Slowed 1", canvas.line(2))
	assert.Equal(t, "  a Goblin Archer … -", canvas.line(3))
	assert.Equal(t, "Valeros spent an action", canvas.line(8))
	assert.Equal(t, HelpText, canvas.line(9))
	assert.Equal(t, 1, canvas.shown)
}

func TestLockedAndSpentDrawDifferently(t *testing.T) {
	lockedGlyph, lockedStyle := slotGlyph(pips.ConditionLocked)
	spentGlyph, spentStyle := slotGlyph(pips.ManuallySpent)

	assert.NotEqual(t, lockedGlyph, spentGlyph)
	assert.NotEqual(t, lockedStyle, spentStyle)
}

func TestRenderSelectedRowIsReversed(t *testing.T) {
	canvas := newFakeCanvas(40, 6)
	NewRenderer(canvas).Render(View{Rows: []Row{{Name: "Ezren", Glyph: 'E', Selected: true}}})

	_, _, attrs := canvas.cells[[2]int{4, rowsTop}].style.Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Ezren", 15, "Ezren"},
		{"Goblin Archer With A Long Name", 15, "Goblin Archer …"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
