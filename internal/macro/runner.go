package macro

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Runner parses macro lines and executes them against an API.
type Runner struct {
	api    *API
	parser *participle.Parser[Statement]
}

// NewRunner creates a runner for api.
func NewRunner(api *API) *Runner {
	return &Runner{api: api, parser: Build()}
}

// Exec parses and runs a single line, returning its output.
func (r *Runner) Exec(line string) (string, error) {
	stmt, err := r.parser.ParseString("", line)
	if err != nil {
		return "", MapError(line, err)
	}
	return r.execute(stmt), nil
}

// Run executes every line of a script, writing each output line to w.
// Blank lines and lines starting with # are skipped. Execution stops at the first bad line.
func (r *Runner) Run(in io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := r.Exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (r *Runner) execute(stmt *Statement) string {
	switch {
	case stmt.Apply != nil:
		s := stmt.Apply
		tier := 1
		if s.Tier != nil {
			tier = *s.Tier
		}
		r.api.Apply(s.Actor, s.Condition, tier)
		return fmt.Sprintf("%s %s %d", s.Actor, s.Condition, r.api.GetTier(s.Actor, s.Condition))
	case stmt.Remove != nil:
		s := stmt.Remove
		r.api.Remove(s.Actor, s.Condition)
		return fmt.Sprintf("%s %s %d", s.Actor, s.Condition, r.api.GetTier(s.Actor, s.Condition))
	case stmt.Adjust != nil:
		s := stmt.Adjust
		r.api.Adjust(s.Actor, s.Condition, s.Delta)
		return fmt.Sprintf("%s %s %d", s.Actor, s.Condition, r.api.GetTier(s.Actor, s.Condition))
	case stmt.Tier != nil:
		s := stmt.Tier
		return fmt.Sprintf("%s %s %d", s.Actor, s.Condition, r.api.GetTier(s.Actor, s.Condition))
	case stmt.Conditions != nil:
		return formatConditions(stmt.Conditions.Actor, r.api)
	case stmt.Spend != nil:
		s := stmt.Spend
		if s.What == "reaction" {
			r.api.SpendReaction(s.Combatant)
			return formatState(s.Combatant, r.api)
		}
		count := 1
		if s.Count != nil {
			count = *s.Count
		}
		r.api.SpendAction(s.Combatant, count)
		return formatState(s.Combatant, r.api)
	case stmt.Reset != nil:
		r.api.Reset(stmt.Reset.Combatant)
		return formatState(stmt.Reset.Combatant, r.api)
	case stmt.State != nil:
		return formatState(stmt.State.Combatant, r.api)
	}
	return ""
}

func formatConditions(actorID string, api *API) string {
	list := api.ListActive(actorID)
	if len(list) == 0 {
		return actorID + ": none"
	}
	labels := make([]string, 0, len(list))
	for _, st := range list {
		label := st.Label
		if !st.Active {
			label += " (suspended)"
		}
		labels = append(labels, label)
	}
	return actorID + ": " + strings.Join(labels, ", ")
}

func formatState(combatantID string, api *API) string {
	sum, ok := api.GetState(combatantID)
	if !ok {
		return combatantID + ": not in combat"
	}
	bonus := "-"
	if sum.BonusReactionAvailable != nil {
		bonus = yesNo(*sum.BonusReactionAvailable)
	}
	return fmt.Sprintf("%s: actions %d/%d reaction %s bonus %s locked %d",
		combatantID, sum.ActionsRemaining, sum.ActionsTotal,
		yesNo(sum.ReactionAvailable), bonus, sum.ConditionLockedCount)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
