package graph

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/c360studio/graphsite/rdf"
)

// Selector picks the set of resources a run will generate pages for. The
// selection is a CEL expression over a single string variable `resource`,
// evaluated against every distinct subject in the store. The expression is
// compiled once, at construction time; a bad expression is a configuration
// error, surfaced before any resolution runs.
type Selector struct {
	expr    string
	program cel.Program
}

// DefaultSelection returns the selection expression used when the config
// does not declare one: all subjects under the site's resource prefix.
func DefaultSelection(resourcePrefix string) string {
	return fmt.Sprintf("resource.startsWith(%q)", resourcePrefix)
}

// NewSelector compiles the given CEL expression.
func NewSelector(expr string) (*Selector, error) {
	env, err := cel.NewEnv(cel.Variable("resource", cel.StringType))
	if err != nil {
		return nil, fmt.Errorf("create selection environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile selection %q: %w", expr, issues.Err())
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, fmt.Errorf("selection %q must evaluate to a boolean, got %s", expr, ast.OutputType())
	}
	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build selection program: %w", err)
	}
	return &Selector{expr: expr, program: program}, nil
}

// Expression returns the selection expression source.
func (s *Selector) Expression() string { return s.expr }

// Select returns the subjects of the store matching the selection, in store
// order.
func (s *Selector) Select(store *Store) ([]rdf.IRI, error) {
	var selected []rdf.IRI
	for _, subject := range store.Subjects() {
		out, _, err := s.program.Eval(map[string]any{
			"resource": string(subject),
		})
		if err != nil {
			return nil, fmt.Errorf("evaluate selection for %s: %w", subject, err)
		}
		match, ok := out.Value().(bool)
		if !ok {
			return nil, fmt.Errorf("selection returned non-boolean for %s", subject)
		}
		if match {
			selected = append(selected, subject)
		}
	}
	return selected, nil
}
