// Package dataclass generates immutable value-class companions for
// declarations annotated with DataClass.
//
// For an annotated class the generator emits a companion class carrying
// the declared fields as final properties and a matching constructor with
// named, bind-to-field parameters. With generateCopyWith, a copyWith
// extension is emitted as well.
package dataclass

import (
	"context"

	"github.com/iancoleman/strcase"

	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/gen"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

// AnnotationName is the annotation this generator reacts to.
const AnnotationName = "DataClass"

// RenameRule selects how declared field names map to generated property
// names.
type RenameRule int

const (
	RenameNone RenameRule = iota
	RenameCamel
	RenamePascal
	RenameSnake
)

// renameRules matches the FieldRename enum of the annotation by member
// name.
var renameRules = map[string]RenameRule{
	"none":   RenameNone,
	"camel":  RenameCamel,
	"pascal": RenamePascal,
	"snake":  RenameSnake,
}

// Apply transforms one declared field name under the rule.
func (r RenameRule) Apply(name string) string {
	switch r {
	case RenameCamel:
		return strcase.ToLowerCamel(name)
	case RenamePascal:
		return strcase.ToCamel(name)
	case RenameSnake:
		return strcase.ToSnake(name)
	default:
		return name
	}
}

// Options is the typed form of the DataClass annotation.
type Options struct {
	ConstConstructor bool
	GenerateCopyWith bool
	FieldRename      RenameRule
}

// OptionsConverter reconstructs Options from the annotation constant.
// Every field is optional; absence means the default.
func OptionsConverter(v meta.Value, _ []meta.AnyConverter) (Options, error) {
	constCtor, err := meta.BoolFieldOr(v, "constConstructor", false)
	if err != nil {
		return Options{}, err
	}
	copyWith, err := meta.BoolFieldOr(v, "generateCopyWith", false)
	if err != nil {
		return Options{}, err
	}
	rename, err := meta.EnumFieldOr(v, "fieldRename", "FieldRename", renameRules, RenameNone)
	if err != nil {
		return Options{}, err
	}
	return Options{
		ConstConstructor: constCtor,
		GenerateCopyWith: copyWith,
		FieldRename:      rename,
	}, nil
}

// Generator implements gen.Generator for DataClass annotations.
type Generator struct {
	registry *meta.Registry
}

// New returns a dataclass generator reading its options through the given
// registry. The registry must have OptionsConverter registered.
func New(registry *meta.Registry) *Generator {
	return &Generator{registry: registry}
}

func (g *Generator) Name() string { return "dataclass" }

func (g *Generator) Generate(_ context.Context, unit *host.Unit) ([]emit.Renderable, error) {
	return gen.ForEachAnnotated(unit, g.Name(), AnnotationName,
		func(decl *host.Declaration, view meta.Value) ([]emit.Renderable, error) {
			if decl.Kind != host.KindClass {
				return nil, errors.Newf("DataClass applies to classes, not %s", decl.Kind)
			}
			if len(decl.Fields) == 0 {
				return nil, errors.New("DataClass needs at least one field")
			}
			opts, err := meta.Convert[Options](g.registry, view)
			if err != nil {
				return nil, err
			}
			return g.build(decl, opts)
		})
}

func (g *Generator) build(decl *host.Declaration, opts Options) ([]emit.Renderable, error) {
	className := "_$" + decl.Name

	props := make([]*emit.Property, 0, len(decl.Fields))
	params := make([]emit.Param, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		name := opts.FieldRename.Apply(f.Name)
		typ := f.Type
		if f.Nullable {
			typ += "?"
		}
		p, err := emit.NewProperty(emit.Property{Name: name, Type: typ, Modifier: emit.Final})
		if err != nil {
			return nil, err
		}
		props = append(props, p)
		params = append(params, emit.Param{
			Name:     name,
			Named:    true,
			Required: !f.Nullable,
			ToField:  true,
		})
	}

	ctor, err := emit.NewConstructor(emit.Constructor{
		ClassName: className,
		Const:     opts.ConstConstructor,
		Params:    params,
	})
	if err != nil {
		return nil, err
	}

	cls, err := emit.NewClass(emit.Class{
		Name:         className,
		Properties:   props,
		Constructors: []*emit.Constructor{ctor},
	})
	if err != nil {
		return nil, err
	}

	nodes := []emit.Renderable{cls}
	if opts.GenerateCopyWith {
		ext, err := g.copyWithExtension(decl, opts, className)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, ext)
	}
	return nodes, nil
}

// copyWithExtension emits the copyWith companion. The body is built
// incrementally: one argument line per declared field.
func (g *Generator) copyWithExtension(decl *host.Declaration, opts Options, className string) (*emit.Extension, error) {
	names := make([]string, 0, len(decl.Fields))
	params := make([]emit.Param, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		name := opts.FieldRename.Apply(f.Name)
		names = append(names, name)
		params = append(params, emit.Param{
			Name:  name,
			Type:  f.Type + "?",
			Named: true,
		})
	}

	method, err := emit.NewMethod(emit.Method{
		Name:    "copyWith",
		Returns: className,
		Params:  params,
		BodyFunc: func(b *emit.Buffer) {
			b.Linef("return %s(", className)
			b.Indent()
			for _, name := range names {
				b.Linef("%s: %s ?? this.%s,", name, name, name)
			}
			b.Outdent()
			b.Line(");")
		},
	})
	if err != nil {
		return nil, err
	}

	return emit.NewExtension(emit.Extension{
		Name:    decl.Name + "CopyWith",
		On:      className,
		Methods: []*emit.Method{method},
	})
}
