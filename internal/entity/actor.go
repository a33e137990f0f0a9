// Package entity provides the actors that take part in an encounter.
package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Side represents which side of an encounter an actor fights on.
type Side int

const (
	SideParty Side = iota
	SideEnemy
	SideNeutral
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideParty:
		return "Party"
	case SideEnemy:
		return "Enemy"
	case SideNeutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// ParseSide maps an encounter file value to a Side. Unknown values are neutral.
func ParseSide(s string) Side {
	switch strings.ToLower(s) {
	case "party", "pc", "player":
		return SideParty
	case "enemy", "foe", "monster":
		return SideEnemy
	default:
		return SideNeutral
	}
}

// Actor is a creature whose conditions the ledger tracks.
type Actor struct {
	ID     string   // Stable identity, shared by every combatant that represents this actor
	Name   string   // Display name
	Side   Side     // Encounter side
	Symbol rune     // Display symbol (defaults to the first letter of Name)
	Feats  []string // Feature names consulted by actor rules
}

// NewActor creates an actor with a default symbol.
func NewActor(id, name string, side Side, feats ...string) *Actor {
	a := &Actor{
		ID:    id,
		Name:  name,
		Side:  side,
		Feats: feats,
	}
	a.Symbol = defaultSymbol(name, side)
	return a
}

func defaultSymbol(name string, side Side) rune {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return '?'
	}
	if side == SideEnemy {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}

// HasFeat reports whether the actor has a feat with the given name, ignoring case.
func (a *Actor) HasFeat(name string) bool {
	for _, f := range a.Feats {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}
