package data

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/actiontracker/internal/gamedata"
)

// CombatantDef defines one participant of an encounter.
type CombatantDef struct {
	ID         string         `yaml:"id"`         // Actor identifier (e.g., "valeros")
	Combatant  string         `yaml:"combatant"`  // Combatant identifier, defaults to "cb-" + ID
	Name       string         `yaml:"name"`       // Display name
	Side       string         `yaml:"side"`       // party, enemy or neutral
	Glyph      string         `yaml:"glyph"`      // Single character for rendering
	Color      string         `yaml:"color"`      // Hex color code
	Feats      []string       `yaml:"feats"`      // Feature names (e.g., "Combat Reflexes")
	Conditions map[string]int `yaml:"conditions"` // Starting conditions by key and tier
}

// CombatantID returns the combatant identifier used by the tracker.
func (c *CombatantDef) CombatantID() string {
	if c.Combatant != "" {
		return c.Combatant
	}
	return "cb-" + c.ID
}

// GlyphRune returns the glyph as a rune for rendering, or 0 if unset.
func (c *CombatantDef) GlyphRune() rune {
	for _, r := range c.Glyph {
		return r
	}
	return 0
}

// TCellColor returns the color as a tcell.Color.
func (c *CombatantDef) TCellColor() tcell.Color {
	color, err := gamedata.ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ConditionKeys returns the starting condition keys, sorted.
func (c *CombatantDef) ConditionKeys() []string {
	keys := make([]string, 0, len(c.Conditions))
	for k := range c.Conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EncounterDef is an encounter file: combatants in initiative order.
type EncounterDef struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Combatants  []CombatantDef `yaml:"combatants"`
}

// Validate checks that every combatant has a unique actor and combatant id.
func (e *EncounterDef) Validate() error {
	if len(e.Combatants) == 0 {
		return errors.New("encounter has no combatants")
	}
	actors := make(map[string]bool, len(e.Combatants))
	combatants := make(map[string]bool, len(e.Combatants))
	for i := range e.Combatants {
		c := &e.Combatants[i]
		if c.ID == "" {
			return fmt.Errorf("combatant %d: missing id", i)
		}
		if actors[c.ID] {
			return fmt.Errorf("combatant %d: duplicate id %s", i, c.ID)
		}
		if combatants[c.CombatantID()] {
			return fmt.Errorf("combatant %d: duplicate combatant id %s", i, c.CombatantID())
		}
		actors[c.ID] = true
		combatants[c.CombatantID()] = true
		if c.Name == "" {
			c.Name = c.ID
		}
	}
	return nil
}

// ParseEncounter decodes and validates an encounter document.
func ParseEncounter(r io.Reader) (*EncounterDef, error) {
	def, err := gamedata.Decode[EncounterDef](r)
	if err != nil {
		return nil, fmt.Errorf("decode encounter: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("encounter %q: %w", def.Name, err)
	}
	return &def, nil
}

// LoadEncounter loads an embedded encounter by name (e.g., "skirmish").
func LoadEncounter(name string) (*EncounterDef, error) {
	f, err := dataFS.Open(strings.TrimSuffix(name, ".yaml") + ".yaml")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseEncounter(f)
}

// LoadEncounterFile loads an encounter from the filesystem.
func LoadEncounterFile(path string) (*EncounterDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseEncounter(f)
}

// Encounters lists the names of the embedded encounters.
func Encounters() []string {
	entries, err := dataFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}
