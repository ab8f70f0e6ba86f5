package gen

import (
	"context"

	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/host"
)

// Generator is one annotation-driven use case of the framework. Generate
// returns the top-level nodes for one compilation unit, in emission order.
// An empty slice (and nil error) means the unit carries nothing relevant
// and produces no output file.
//
// Generate must be a pure pass over the unit: no I/O, no retained state.
// One generator instance is shared across concurrent unit runs.
type Generator interface {
	// Name identifies the generator; it becomes part of the derived
	// output path, so it must be a lowercase identifier.
	Name() string

	Generate(ctx context.Context, unit *host.Unit) ([]emit.Renderable, error)
}

// DeclError attributes a failure to one declaration of one unit. The
// runner records these and keeps going: a malformed constant on one
// declaration must not abort its siblings.
type DeclError struct {
	Unit      string
	Generator string
	Decl      string
	Err       error
}

func (e *DeclError) Error() string {
	return e.Unit + ": " + e.Generator + ": " + e.Decl + ": " + e.Err.Error()
}

func (e *DeclError) Unwrap() error { return e.Err }
