package emit

import "github.com/loomgen/loom/errors"

// EnumDecl is an enum declaration. Value order is preserved exactly as
// supplied; it is meaningful to consumers matching by index.
type EnumDecl struct {
	Name   string
	Values []string
}

// NewEnumDecl validates and returns an immutable enum node owning a copy
// of the value list.
func NewEnumDecl(e EnumDecl) (*EnumDecl, error) {
	if e.Name == "" {
		return nil, errors.New("enum name must not be empty")
	}
	if len(e.Values) == 0 {
		return nil, errors.Newf("enum %s has no values", e.Name)
	}
	seen := make(map[string]struct{}, len(e.Values))
	for _, v := range e.Values {
		if v == "" {
			return nil, errors.Newf("enum %s has an empty value name", e.Name)
		}
		if _, dup := seen[v]; dup {
			return nil, errors.Newf("enum %s declares %q twice", e.Name, v)
		}
		seen[v] = struct{}{}
	}
	e.Values = append([]string(nil), e.Values...)
	return &e, nil
}

func (e *EnumDecl) Render(b *Buffer) {
	b.Linef("enum %s {", e.Name)
	b.Indent()
	for _, v := range e.Values {
		b.Line(v + ",")
	}
	b.Outdent()
	b.Line("}")
}
