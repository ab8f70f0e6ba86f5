package emit

import (
	"strings"

	"github.com/loomgen/loom/errors"
)

// PropertyModifier selects the declaration qualifier of a property.
type PropertyModifier int

const (
	Var PropertyModifier = iota
	Final
	Const
)

func (m PropertyModifier) keyword() string {
	switch m {
	case Final:
		return "final"
	case Const:
		return "const"
	default:
		return "var"
	}
}

// Property is one field declaration owned by a class or mixin.
type Property struct {
	Name     string
	Type     string
	Modifier PropertyModifier
	Static   bool
}

// NewProperty validates and returns an immutable property node.
func NewProperty(p Property) (*Property, error) {
	if p.Name == "" {
		return nil, errors.New("property name must not be empty")
	}
	if p.Type == "" {
		return nil, errors.Newf("property %q has no type", p.Name)
	}
	return &p, nil
}

func (p *Property) Render(b *Buffer) {
	var sb strings.Builder
	if p.Static {
		sb.WriteString("static ")
	}
	if p.Modifier != Var {
		sb.WriteString(p.Modifier.keyword())
		sb.WriteString(" ")
	}
	sb.WriteString(p.Type)
	sb.WriteString(" ")
	sb.WriteString(p.Name)
	sb.WriteString(";")
	b.Line(sb.String())
}

// Constructor is a class constructor. The constant-constructible flag
// alters the emitted declaration qualifier.
type Constructor struct {
	// ClassName is the owning class; NewClass verifies it matches.
	ClassName string
	// Name is the optional named-constructor suffix (ClassName.Name).
	Name   string
	Const  bool
	Params []Param
	// Body is a literal body; BodyFunc builds the body incrementally
	// against the in-progress buffer. At most one may be set. With
	// neither, the constructor renders with a terse semicolon body.
	Body     string
	BodyFunc func(*Buffer)
}

// NewConstructor validates and returns an immutable constructor node with
// its own copy of the parameter list.
func NewConstructor(c Constructor) (*Constructor, error) {
	if c.ClassName == "" {
		return nil, errors.New("constructor class name must not be empty")
	}
	if c.Body != "" && c.BodyFunc != nil {
		return nil, errors.New("constructor cannot carry both a literal body and a body builder")
	}
	if err := validateParams(c.Params, true); err != nil {
		return nil, errors.Wrapf(err, "constructor %s", c.ClassName)
	}
	c.Params = append([]Param(nil), c.Params...)
	return &c, nil
}

func (c *Constructor) Render(b *Buffer) {
	var head strings.Builder
	if c.Const {
		head.WriteString("const ")
	}
	head.WriteString(c.ClassName)
	if c.Name != "" {
		head.WriteString(".")
		head.WriteString(c.Name)
	}
	head.WriteString(paramList(c.Params))

	if rn := renames(c.Params); len(rn) > 0 {
		inits := make([]string, 0, len(rn))
		for _, p := range rn {
			inits = append(inits, p.FieldName+" = "+p.Name)
		}
		head.WriteString(" : ")
		head.WriteString(strings.Join(inits, ", "))
	}

	if c.Body == "" && c.BodyFunc == nil {
		head.WriteString(";")
		b.Line(head.String())
		return
	}
	b.Write(head.String())
	b.Write(" ")
	writeBody(b, c.Body, c.BodyFunc)
}

// Method is a method declaration owned by a class, mixin, or extension.
type Method struct {
	Name string
	// Returns is the return type display string; empty renders as void.
	Returns  string
	Params   []Param
	Static   bool
	Override bool
	Body     string
	BodyFunc func(*Buffer)
}

// NewMethod validates and returns an immutable method node with its own
// copy of the parameter list.
func NewMethod(m Method) (*Method, error) {
	if m.Name == "" {
		return nil, errors.New("method name must not be empty")
	}
	if m.Body != "" && m.BodyFunc != nil {
		return nil, errors.Newf("method %q cannot carry both a literal body and a body builder", m.Name)
	}
	if err := validateParams(m.Params, false); err != nil {
		return nil, errors.Wrapf(err, "method %s", m.Name)
	}
	m.Params = append([]Param(nil), m.Params...)
	return &m, nil
}

func (m *Method) Render(b *Buffer) {
	if m.Override {
		b.Line("@override")
	}
	var head strings.Builder
	if m.Static {
		head.WriteString("static ")
	}
	returns := m.Returns
	if returns == "" {
		returns = "void"
	}
	head.WriteString(returns)
	head.WriteString(" ")
	head.WriteString(m.Name)
	head.WriteString(paramList(m.Params))
	b.Write(head.String())
	b.Write(" ")
	writeBody(b, m.Body, m.BodyFunc)
}

// Class is a class declaration with fixed member ordering: header,
// properties, constructors, methods.
type Class struct {
	Name         string
	Implements   []string
	Properties   []*Property
	Constructors []*Constructor
	Methods      []*Method
}

// NewClass validates and returns an immutable class node owning copies of
// its child lists. Zero members is legal and renders an empty-bodied
// declaration.
func NewClass(c Class) (*Class, error) {
	if c.Name == "" {
		return nil, errors.New("class name must not be empty")
	}
	for _, ctor := range c.Constructors {
		if ctor.ClassName != c.Name {
			return nil, errors.Newf("class %s owns a constructor declared for %s", c.Name, ctor.ClassName)
		}
	}
	c.Implements = append([]string(nil), c.Implements...)
	c.Properties = append([]*Property(nil), c.Properties...)
	c.Constructors = append([]*Constructor(nil), c.Constructors...)
	c.Methods = append([]*Method(nil), c.Methods...)
	return &c, nil
}

func (c *Class) Render(b *Buffer) {
	header := "class " + c.Name
	if len(c.Implements) > 0 {
		header += " implements " + strings.Join(c.Implements, ", ")
	}
	renderMembers(b, header, c.Properties, c.Constructors, c.Methods)
}

// renderMembers renders a braced declaration body shared by classes,
// mixins, and extensions: properties first, then constructors, then
// methods, blank-line separated between sections and between callables.
func renderMembers(b *Buffer, header string, props []*Property, ctors []*Constructor, methods []*Method) {
	if len(props) == 0 && len(ctors) == 0 && len(methods) == 0 {
		b.Line(header + " {}")
		return
	}
	b.Line(header + " {")
	b.Indent()
	wrote := false
	for _, p := range props {
		p.Render(b)
		wrote = true
	}
	for _, c := range ctors {
		if wrote {
			b.Line("")
		}
		c.Render(b)
		wrote = true
	}
	for _, m := range methods {
		if wrote {
			b.Line("")
		}
		m.Render(b)
		wrote = true
	}
	b.Outdent()
	b.Line("}")
}
