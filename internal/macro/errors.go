package macro

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatement is returned for a line whose first word is not a statement.
var ErrUnknownStatement = errors.New("unknown macro statement")

// MapError turns a parse failure into a usage hint for the statement the line starts with.
func MapError(input string, err error) error {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty line", ErrUnknownStatement)
	}

	switch parts[0] {
	case "apply":
		return fmt.Errorf("usage: apply <condition> [tier] to: <actor> (%v)", err)
	case "remove":
		return fmt.Errorf("usage: remove <condition> from: <actor> (%v)", err)
	case "adjust":
		return fmt.Errorf("usage: adjust <condition> <delta> on: <actor> (%v)", err)
	case "tier":
		return fmt.Errorf("usage: tier <condition> of: <actor> (%v)", err)
	case "conditions":
		return fmt.Errorf("usage: conditions of: <actor> (%v)", err)
	case "spend":
		return fmt.Errorf("usage: spend <action|actions|reaction> [count] by: <combatant> (%v)", err)
	case "reset":
		return fmt.Errorf("usage: reset <combatant> (%v)", err)
	case "state":
		return fmt.Errorf("usage: state <combatant> (%v)", err)
	}
	return fmt.Errorf("%w %q", ErrUnknownStatement, parts[0])
}
