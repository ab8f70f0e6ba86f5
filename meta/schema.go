package meta

// Schema pairs each composite field with its converter at registration
// time, replacing the positional nested-converter list with name-keyed
// lookup. Positional lists silently misbehave when a caller reorders them;
// a schema lookup for an unbound field fails loudly instead.
//
// A composite converter written against a schema closes over it:
//
//	func OptionsConverter(s *meta.Schema) meta.Converter[Options] {
//	    return func(v meta.Value, _ []meta.AnyConverter) (Options, error) {
//	        sig, err := s.Field("signatures")
//	        ...
//	    }
//	}
type Schema struct {
	bindings map[string]AnyConverter
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{bindings: make(map[string]AnyConverter)}
}

// Bind associates a field name with its converter and returns the schema
// for chaining. Binding the same field twice replaces the earlier entry.
func (s *Schema) Bind(field string, c AnyConverter) *Schema {
	s.bindings[field] = c
	return s
}

// BindTyped associates a field name with a typed converter.
func BindTyped[T any](s *Schema, field string, c Converter[T]) *Schema {
	return s.Bind(field, Erase(c))
}

// Field returns the converter bound to the given field name. An unbound
// field fails with MissingFieldError, mirroring the view-side error for a
// field the host never supplied.
func (s *Schema) Field(field string) (AnyConverter, error) {
	c, ok := s.bindings[field]
	if !ok {
		return nil, &MissingFieldError{Field: field}
	}
	return c, nil
}
