package emit

import (
	"strings"

	"github.com/loomgen/loom/errors"
)

// Param describes one parameter of a constructor, method, or function.
type Param struct {
	Name string
	// Type is the declared type display string. Ignored for bind-to-field
	// parameters, whose type is carried by the bound field.
	Type string
	// Named selects named (curly-brace) style over positional.
	Named bool
	// Required marks the parameter mandatory. Positional parameters are
	// required unless bracketed; named parameters get the required keyword.
	Required bool
	// Default is the default value expression for optional parameters.
	Default string
	// ToField binds the parameter directly to the enclosing field of the
	// same name (this.name shorthand), without extra body code.
	ToField bool
	// FieldName names the bound field when it differs from the parameter
	// name; the binding then renders as a constructor initializer instead
	// of the this. shorthand. Only meaningful with ToField.
	FieldName string
}

func validateParams(params []Param, allowFieldBind bool) error {
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if p.Name == "" {
			return errors.New("parameter name must not be empty")
		}
		if _, dup := seen[p.Name]; dup {
			return errors.Newf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.ToField && !allowFieldBind {
			return errors.Newf("parameter %q: bind-to-field is only valid on constructors", p.Name)
		}
		if !p.ToField && p.Type == "" {
			return errors.Newf("parameter %q has no type", p.Name)
		}
		if p.Default != "" && p.Required {
			return errors.Newf("parameter %q: required parameters cannot carry a default", p.Name)
		}
		if p.FieldName != "" && !p.ToField {
			return errors.Newf("parameter %q: field name given without bind-to-field", p.Name)
		}
	}
	var hasOptionalPositional, hasNamed bool
	for _, p := range params {
		if p.Named {
			hasNamed = true
		} else if !p.Required {
			hasOptionalPositional = true
		}
	}
	if hasOptionalPositional && hasNamed {
		return errors.New("optional positional and named parameters cannot be mixed")
	}
	return nil
}

// renames returns the parameters that bind to a differently named field;
// these render as constructor initializers.
func renames(params []Param) []Param {
	var out []Param
	for _, p := range params {
		if p.ToField && p.FieldName != "" && p.FieldName != p.Name {
			out = append(out, p)
		}
	}
	return out
}

func (p Param) decl() string {
	var sb strings.Builder
	if p.Named && p.Required {
		sb.WriteString("required ")
	}
	switch {
	case p.ToField && (p.FieldName == "" || p.FieldName == p.Name):
		sb.WriteString("this.")
		sb.WriteString(p.Name)
	case p.ToField:
		// Renamed binding: a plain parameter assigned in the initializer
		// list. The type is taken from Type when given.
		if p.Type != "" {
			sb.WriteString(p.Type)
			sb.WriteString(" ")
		}
		sb.WriteString(p.Name)
	default:
		sb.WriteString(p.Type)
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	if p.Default != "" {
		sb.WriteString(" = ")
		sb.WriteString(p.Default)
	}
	return sb.String()
}

// paramList renders a full parameter list, grouping positional-required,
// positional-optional (bracketed), and named (braced) parameters in that
// fixed order. Source order is preserved within each group.
func paramList(params []Param) string {
	var positional, optional, named []string
	for _, p := range params {
		switch {
		case p.Named:
			named = append(named, p.decl())
		case p.Required:
			positional = append(positional, p.decl())
		default:
			optional = append(optional, p.decl())
		}
	}

	parts := make([]string, 0, 3)
	if len(positional) > 0 {
		parts = append(parts, strings.Join(positional, ", "))
	}
	if len(optional) > 0 {
		parts = append(parts, "["+strings.Join(optional, ", ")+"]")
	}
	if len(named) > 0 {
		parts = append(parts, "{"+strings.Join(named, ", ")+"}")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
