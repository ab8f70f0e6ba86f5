package emit

import "github.com/loomgen/loom/errors"

// Getter is a computed property accessor.
type Getter struct {
	Name string
	// Type is the accessor's declared type display string.
	Type     string
	Static   bool
	Override bool
	Body     string
	BodyFunc func(*Buffer)
}

// NewGetter validates and returns an immutable getter node.
func NewGetter(g Getter) (*Getter, error) {
	if g.Name == "" {
		return nil, errors.New("getter name must not be empty")
	}
	if g.Type == "" {
		return nil, errors.Newf("getter %q has no type", g.Name)
	}
	if g.Body != "" && g.BodyFunc != nil {
		return nil, errors.Newf("getter %q cannot carry both a literal body and a body builder", g.Name)
	}
	return &g, nil
}

func (g *Getter) Render(b *Buffer) {
	if g.Override {
		b.Line("@override")
	}
	if g.Static {
		b.Write("static ")
	}
	b.Writef("%s get %s ", g.Type, g.Name)
	writeBody(b, g.Body, g.BodyFunc)
}

// Setter is a property mutator accessor.
type Setter struct {
	Name string
	// Type is the declared type of the incoming value.
	Type string
	// ValueName names the setter parameter; defaults to value.
	ValueName string
	Static    bool
	Override  bool
	Body      string
	BodyFunc  func(*Buffer)
}

// NewSetter validates and returns an immutable setter node.
func NewSetter(s Setter) (*Setter, error) {
	if s.Name == "" {
		return nil, errors.New("setter name must not be empty")
	}
	if s.Type == "" {
		return nil, errors.Newf("setter %q has no type", s.Name)
	}
	if s.Body != "" && s.BodyFunc != nil {
		return nil, errors.Newf("setter %q cannot carry both a literal body and a body builder", s.Name)
	}
	if s.ValueName == "" {
		s.ValueName = "value"
	}
	return &s, nil
}

func (s *Setter) Render(b *Buffer) {
	if s.Override {
		b.Line("@override")
	}
	if s.Static {
		b.Write("static ")
	}
	b.Writef("set %s(%s %s) ", s.Name, s.Type, s.ValueName)
	writeBody(b, s.Body, s.BodyFunc)
}
