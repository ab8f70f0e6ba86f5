package emit

import (
	"path/filepath"
	"strings"

	"github.com/loomgen/loom/errors"
)

// Function is a free function declaration.
type Function struct {
	Name string
	// Returns is the return type display string; empty renders as void.
	Returns  string
	Params   []Param
	Body     string
	BodyFunc func(*Buffer)
}

// NewFunction validates and returns an immutable free-function node with
// its own copy of the parameter list.
func NewFunction(f Function) (*Function, error) {
	if f.Name == "" {
		return nil, errors.New("function name must not be empty")
	}
	if f.Body != "" && f.BodyFunc != nil {
		return nil, errors.Newf("function %q cannot carry both a literal body and a body builder", f.Name)
	}
	if err := validateParams(f.Params, false); err != nil {
		return nil, errors.Wrapf(err, "function %s", f.Name)
	}
	f.Params = append([]Param(nil), f.Params...)
	return &f, nil
}

func (f *Function) Render(b *Buffer) {
	returns := f.Returns
	if returns == "" {
		returns = "void"
	}
	b.Writef("%s %s%s ", returns, f.Name, paramList(f.Params))
	writeBody(b, f.Body, f.BodyFunc)
}

// Variable is a free variable declaration.
type Variable struct {
	Name string
	// Type is optional when an initializer value is given.
	Type     string
	Modifier PropertyModifier
	// Value is the initializer expression, rendered verbatim.
	Value string
}

// NewVariable validates and returns an immutable free-variable node.
func NewVariable(v Variable) (*Variable, error) {
	if v.Name == "" {
		return nil, errors.New("variable name must not be empty")
	}
	if v.Type == "" && v.Value == "" {
		return nil, errors.Newf("variable %q needs a type or an initializer", v.Name)
	}
	if v.Modifier == Const && v.Value == "" {
		return nil, errors.Newf("const variable %q needs an initializer", v.Name)
	}
	return &v, nil
}

func (v *Variable) Render(b *Buffer) {
	var sb strings.Builder
	if v.Modifier != Var {
		sb.WriteString(v.Modifier.keyword())
		sb.WriteString(" ")
	} else if v.Type == "" {
		sb.WriteString("var ")
	}
	if v.Type != "" {
		sb.WriteString(v.Type)
		sb.WriteString(" ")
	}
	sb.WriteString(v.Name)
	if v.Value != "" {
		sb.WriteString(" = ")
		sb.WriteString(v.Value)
	}
	sb.WriteString(";")
	b.Line(sb.String())
}

// PartOfMarker establishes the generated file's relationship to its origin
// file. It is resolved from build-step context rather than generator data,
// and must render before any other top-level node.
type PartOfMarker struct {
	uri string
}

// NewPartOfMarker derives the marker from the origin source path. Only the
// base name survives: generated files sit next to their origin.
func NewPartOfMarker(sourcePath string) (*PartOfMarker, error) {
	if sourcePath == "" {
		return nil, errors.New("part-of marker needs an origin path")
	}
	return &PartOfMarker{uri: filepath.Base(sourcePath)}, nil
}

// URI returns the origin file reference the marker renders.
func (p *PartOfMarker) URI() string { return p.uri }

func (p *PartOfMarker) Render(b *Buffer) {
	b.Linef("part of '%s';", p.uri)
}
