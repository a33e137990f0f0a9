// Package game runs encounters: turn sequencing and the interactive tracker loop.
package game

// Phase represents the lifecycle phase of an encounter.
type Phase int

const (
	// PhaseSetup - combatants are registered but combat has not started
	PhaseSetup Phase = iota
	// PhaseActive - turns are being taken
	PhaseActive
	// PhaseEnded - combat is over and pip state has been torn down
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
