package gen

import (
	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

// ForEachAnnotated runs fn once per declaration carrying the named
// annotation, isolating failures: a declaration whose conversion or node
// construction fails is skipped and its error recorded, while siblings
// still generate. The returned error joins the per-declaration failures
// (nil when all succeeded); the returned nodes are the successful ones, in
// declaration order.
func ForEachAnnotated(
	unit *host.Unit,
	generator, annotation string,
	fn func(decl *host.Declaration, view meta.Value) ([]emit.Renderable, error),
) ([]emit.Renderable, error) {
	var nodes []emit.Renderable
	var failures []error
	for i := range unit.Decls {
		decl := &unit.Decls[i]
		view, ok := decl.Annotation(annotation)
		if !ok {
			continue
		}
		out, err := fn(decl, view)
		if err != nil {
			failures = append(failures, &DeclError{
				Unit:      unit.Path,
				Generator: generator,
				Decl:      decl.Name,
				Err:       err,
			})
			continue
		}
		nodes = append(nodes, out...)
	}
	return nodes, errors.Join(failures...)
}
