// Package notify carries human-readable condition notifications from the
// ledger to whatever displays them (chat log, terminal, log file).
package notify

import "fmt"

// EventType names a notification kind.
type EventType string

const (
	EventConditionApplied     EventType = "ConditionApplied"
	EventConditionRemoved     EventType = "ConditionRemoved"
	EventConditionDecremented EventType = "ConditionDecremented"
)

// Event is a fire-and-forget notification.
type Event interface {
	Type() EventType
	Message() string
}

// ConditionApplied reports a condition created or changed on an actor.
type ConditionApplied struct {
	ActorID     string
	ActorName   string
	Condition   string
	Label       string
	Tier        int
	Description string
}

func (e *ConditionApplied) Type() EventType { return EventConditionApplied }
func (e *ConditionApplied) Message() string {
	return fmt.Sprintf("%s: %s\n%s", e.ActorName, e.Label, e.Description)
}

// ConditionRemoved reports a condition deleted from an actor.
type ConditionRemoved struct {
	ActorID   string
	ActorName string
	Condition string
	Name      string
}

func (e *ConditionRemoved) Type() EventType { return EventConditionRemoved }
func (e *ConditionRemoved) Message() string {
	return fmt.Sprintf("%s: %s removed", e.ActorName, e.Name)
}

// ConditionDecremented reports an end-of-turn tier drop that left the condition in place.
type ConditionDecremented struct {
	ActorID   string
	ActorName string
	Condition string
	Label     string
	Tier      int
}

func (e *ConditionDecremented) Type() EventType { return EventConditionDecremented }
func (e *ConditionDecremented) Message() string {
	return fmt.Sprintf("%s: %s (end of turn)", e.ActorName, e.Label)
}
