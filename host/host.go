// Package host defines the boundary to the static-analysis front end.
//
// The front end — whatever enumerates declarations, resolves types, and
// reads annotation constants — lives outside this module's core. Generators
// consume the plain data structures here and a meta.Value per annotation;
// they never see the front end's own representation. The bundled unitfile
// package is one such front end, reading declaration descriptions from
// YAML files.
package host

import "github.com/loomgen/loom/meta"

// DeclKind enumerates the declaration kinds a compilation unit can carry.
type DeclKind int

const (
	KindClass DeclKind = iota
	KindMixin
	KindExtension
	KindEnum
	KindFunction
	KindVariable
)

func (k DeclKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindMixin:
		return "mixin"
	case KindExtension:
		return "extension"
	case KindEnum:
		return "enum"
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Unit is one compilation unit handed to a generator: the origin source
// path and its declarations in source order.
type Unit struct {
	// Path is the origin source file the unit describes.
	Path  string
	Decls []Declaration
}

// Annotation is one annotation instance attached to a declaration: the
// annotation's type name and its compile-time-constant configuration value.
type Annotation struct {
	Name  string
	Value meta.Value
}

// Declaration is one annotated (or unannotated) declaration with its
// structural members resolved to display strings.
type Declaration struct {
	Kind DeclKind
	Name string
	// Annotations in source order. Lookup goes through Annotation.
	Annotations []Annotation
	// Fields in declaration order; order is meaningful downstream.
	Fields []Field
}

// Annotation returns the constant view of the named annotation, if present.
func (d *Declaration) Annotation(name string) (meta.Value, bool) {
	for _, a := range d.Annotations {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// Field is one field of a declaration, with its declared type as a display
// string and resolved nullability.
type Field struct {
	Name     string
	Type     string
	Nullable bool
}
