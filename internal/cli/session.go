package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/actiontracker/internal/game"
)

// Session drives an encounter from a line-oriented script. Turn commands
// (start, next, end, order) move the encounter; every other line is a macro.
type Session struct {
	app *App
	out io.Writer
}

// NewSession creates a session writing results to out.
func NewSession(app *App, out io.Writer) *Session {
	return &Session{app: app, out: out}
}

// Run executes the script read from in. Blank lines and # comments are
// skipped. A failing line stops the script.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.Exec(ctx, line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec runs a single line.
func (s *Session) Exec(ctx context.Context, line string) error {
	enc := s.app.Encounter
	switch strings.ToLower(line) {
	case "start":
		if err := enc.Start(ctx); err != nil {
			return err
		}
		s.printTurn()
		return nil
	case "next":
		if enc.Phase() == game.PhaseSetup {
			if err := enc.Start(ctx); err != nil {
				return err
			}
		} else if err := enc.Next(ctx); err != nil {
			return err
		}
		s.printTurn()
		return nil
	case "end":
		if err := enc.End(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintf(s.out, "encounter %s ended\n", enc.Name)
		return err
	case "order":
		for i, c := range enc.Order() {
			marker := " "
			if cur, ok := enc.Current(); ok && cur.ID == c.ID {
				marker = ">"
			}
			if _, err := fmt.Fprintf(s.out, "%s %d. %s (%s)\n", marker, i+1, c.ID, c.ActorID); err != nil {
				return err
			}
		}
		return nil
	}

	out, err := s.app.Runner.Exec(line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out, out)
	return err
}

func (s *Session) printTurn() {
	enc := s.app.Encounter
	cur, ok := enc.Current()
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "round %d turn %d: %s\n", enc.Round(), enc.Turn()+1, cur.ID)
}
