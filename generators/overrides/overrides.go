// Package overrides generates override-report extensions for declarations
// annotated with OverrideReport.
//
// The annotation is the most structurally involved one in the repo: an
// integer, an enum, a nullable nested object, and a list of nested
// records. Its converter takes the nested converters positionally
// (extra first, then signature), matching the order the composite
// declares.
package overrides

import (
	"context"
	"fmt"

	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/gen"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

// AnnotationName is the annotation this generator reacts to.
const AnnotationName = "OverrideReport"

// ReportFormat selects the emitted report shape.
type ReportFormat int

const (
	FormatConcise ReportFormat = iota
	FormatExpanded
)

var reportFormats = map[string]ReportFormat{
	"concise":  FormatConcise,
	"expanded": FormatExpanded,
}

// Signature is one override candidate.
type Signature struct {
	Name       string
	IsApproved bool
}

// Extra carries optional report decoration.
type Extra struct {
	Prefix string
}

// Options is the typed form of the OverrideReport annotation.
type Options struct {
	Duplicates int64
	Format     ReportFormat
	Extra      *Extra
	Signatures []Signature
}

// SignatureConverter reconstructs one Signature.
func SignatureConverter(v meta.Value, _ []meta.AnyConverter) (Signature, error) {
	name, err := meta.StringField(v, "name")
	if err != nil {
		return Signature{}, err
	}
	approved, err := meta.BoolField(v, "isApproved")
	if err != nil {
		return Signature{}, err
	}
	return Signature{Name: name, IsApproved: approved}, nil
}

// ExtraConverter reconstructs the optional Extra payload.
func ExtraConverter(v meta.Value, _ []meta.AnyConverter) (Extra, error) {
	prefix, err := meta.StringField(v, "prefix")
	if err != nil {
		return Extra{}, err
	}
	return Extra{Prefix: prefix}, nil
}

// OptionsConverter reconstructs Options. Nested converters are positional:
// nested[0] converts Extra, nested[1] converts Signature.
func OptionsConverter(v meta.Value, nested []meta.AnyConverter) (Options, error) {
	if len(nested) != 2 {
		return Options{}, errors.Newf("OverrideReport converter needs 2 nested converters, got %d", len(nested))
	}
	duplicates, err := meta.IntField(v, "duplicates")
	if err != nil {
		return Options{}, err
	}
	format, err := meta.EnumField(v, "format", "ReportFormat", reportFormats)
	if err != nil {
		return Options{}, err
	}
	extra, err := meta.ObjectField(v, "extra", func(v meta.Value, _ []meta.AnyConverter) (Extra, error) {
		out, err := nested[0](v, nil)
		if err != nil {
			return Extra{}, err
		}
		typed, ok := out.(Extra)
		if !ok {
			return Extra{}, errors.Newf("nested converter 0 produced %T, want Extra", out)
		}
		return typed, nil
	})
	if err != nil {
		return Options{}, err
	}
	sigs, err := meta.SliceField(v, "signatures", func(v meta.Value, _ []meta.AnyConverter) (Signature, error) {
		out, err := nested[1](v, nil)
		if err != nil {
			return Signature{}, err
		}
		typed, ok := out.(Signature)
		if !ok {
			return Signature{}, errors.Newf("nested converter 1 produced %T, want Signature", out)
		}
		return typed, nil
	})
	if err != nil {
		return Options{}, err
	}
	return Options{Duplicates: duplicates, Format: format, Extra: extra, Signatures: sigs}, nil
}

// Generator implements gen.Generator for OverrideReport annotations.
type Generator struct {
	registry *meta.Registry
}

// New returns an overrides generator reading its options through the
// given registry. The registry must have OptionsConverter registered.
func New(registry *meta.Registry) *Generator {
	return &Generator{registry: registry}
}

func (g *Generator) Name() string { return "overrides" }

func (g *Generator) Generate(_ context.Context, unit *host.Unit) ([]emit.Renderable, error) {
	return gen.ForEachAnnotated(unit, g.Name(), AnnotationName,
		func(decl *host.Declaration, view meta.Value) ([]emit.Renderable, error) {
			opts, err := meta.Convert[Options](g.registry, view,
				meta.Erase(ExtraConverter), meta.Erase(SignatureConverter))
			if err != nil {
				return nil, err
			}
			ext, err := buildExtension(decl, opts)
			if err != nil {
				return nil, err
			}
			return []emit.Renderable{ext}, nil
		})
}

// buildExtension emits the report extension. Approved signatures keep
// their source order; the report body depends on the configured format.
func buildExtension(decl *host.Declaration, opts Options) (*emit.Extension, error) {
	var approved []Signature
	for _, s := range opts.Signatures {
		if s.IsApproved {
			approved = append(approved, s)
		}
	}

	prefix := ""
	if opts.Extra != nil {
		prefix = opts.Extra.Prefix
	}

	method, err := emit.NewMethod(emit.Method{
		Name:    "overrideReport",
		Returns: "String",
		BodyFunc: func(b *emit.Buffer) {
			switch opts.Format {
			case FormatExpanded:
				b.Line("final lines = <String>[];")
				for _, s := range approved {
					b.Linef("lines.add('%s%s: %d duplicate(s)');", prefix, s.Name, opts.Duplicates)
				}
				b.Line("return lines.join('\\n');")
			default:
				b.Linef("return '%s%d duplicate(s) across %d approved override(s)';",
					prefix, opts.Duplicates, len(approved))
			}
		},
	})
	if err != nil {
		return nil, err
	}

	methods := []*emit.Method{method}
	for _, s := range approved {
		m, err := emit.NewMethod(emit.Method{
			Name:    s.Name,
			Returns: "void",
			Body:    fmt.Sprintf("throw UnimplementedError('%s is pending override');", s.Name),
		})
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	return emit.NewExtension(emit.Extension{
		Name:    decl.Name + "OverrideReport",
		On:      decl.Name,
		Methods: methods,
	})
}
