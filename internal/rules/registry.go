// Package rules evaluates actor feature rules written in CEL.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// Registry manages the CEL environment used for actor rules.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment. Expressions see a single
// variable, actor, holding the actor's id, name and feats.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("actor", cel.MapType(cel.StringType, cel.DynType)),
		ext.Strings(),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Compile checks an expression and prepares it for repeated evaluation.
func (r *Registry) Compile(expression string) (cel.Program, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, iss.Err())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expression, err)
	}
	return prog, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	prog, err := r.Compile(expression)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}
