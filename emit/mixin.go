package emit

import (
	"strings"

	"github.com/loomgen/loom/errors"
)

// Mixin is a mixin declaration: structurally a class without constructors,
// plus an applies-to constraint list (the types it may be mixed into).
type Mixin struct {
	Name       string
	On         []string
	Implements []string
	Properties []*Property
	Methods    []*Method
}

// NewMixin validates and returns an immutable mixin node owning copies of
// its child lists.
func NewMixin(m Mixin) (*Mixin, error) {
	if m.Name == "" {
		return nil, errors.New("mixin name must not be empty")
	}
	m.On = append([]string(nil), m.On...)
	m.Implements = append([]string(nil), m.Implements...)
	m.Properties = append([]*Property(nil), m.Properties...)
	m.Methods = append([]*Method(nil), m.Methods...)
	return &m, nil
}

func (m *Mixin) Render(b *Buffer) {
	header := "mixin " + m.Name
	if len(m.On) > 0 {
		header += " on " + strings.Join(m.On, ", ")
	}
	if len(m.Implements) > 0 {
		header += " implements " + strings.Join(m.Implements, ", ")
	}
	renderMembers(b, header, m.Properties, nil, m.Methods)
}

// Extension is an extension declaration on an existing type.
type Extension struct {
	Name    string
	On      string
	Methods []*Method
	Getters []*Getter
}

// NewExtension validates and returns an immutable extension node owning
// copies of its child lists.
func NewExtension(e Extension) (*Extension, error) {
	if e.Name == "" {
		return nil, errors.New("extension name must not be empty")
	}
	if e.On == "" {
		return nil, errors.Newf("extension %s has no extended type", e.Name)
	}
	e.Methods = append([]*Method(nil), e.Methods...)
	e.Getters = append([]*Getter(nil), e.Getters...)
	return &e, nil
}

func (e *Extension) Render(b *Buffer) {
	header := "extension " + e.Name + " on " + e.On
	if len(e.Methods) == 0 && len(e.Getters) == 0 {
		b.Line(header + " {}")
		return
	}
	b.Line(header + " {")
	b.Indent()
	wrote := false
	for _, g := range e.Getters {
		if wrote {
			b.Line("")
		}
		g.Render(b)
		wrote = true
	}
	for _, m := range e.Methods {
		if wrote {
			b.Line("")
		}
		m.Render(b)
		wrote = true
	}
	b.Outdent()
	b.Line("}")
}
