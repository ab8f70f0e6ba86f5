package meta

import "errors"

// Field helpers used by hand-written composite converters. Each resolves
// one declared field of an object constant; a missing field surfaces as
// MissingFieldError from the underlying view.

// StringField resolves a string field.
func StringField(v Value, name string) (string, error) {
	f, err := v.Field(name)
	if err != nil {
		return "", err
	}
	return f.StringVal()
}

// IntField resolves an integer field.
func IntField(v Value, name string) (int64, error) {
	f, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return f.IntVal()
}

// BoolField resolves a boolean field.
func BoolField(v Value, name string) (bool, error) {
	f, err := v.Field(name)
	if err != nil {
		return false, err
	}
	return f.BoolVal()
}

// DoubleField resolves a floating-point field.
func DoubleField(v Value, name string) (float64, error) {
	f, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return f.DoubleVal()
}

// EnumField resolves an enum field by matching the constant's member name,
// by exact string equality, against the candidate table. No partial or
// case-insensitive matching: an unknown name fails with
// EnumValueNotFoundError.
func EnumField[T any](v Value, name, enumType string, candidates map[string]T) (T, error) {
	var zero T
	f, err := v.Field(name)
	if err != nil {
		return zero, err
	}
	member, err := f.EnumMember()
	if err != nil {
		return zero, err
	}
	out, ok := candidates[member]
	if !ok {
		return zero, &EnumValueNotFoundError{EnumType: enumType, Member: member}
	}
	return out, nil
}

// optionalField resolves a field, mapping both absence and a present null
// to nil. Callers that treat absence as "field not set" go through the
// *Or helpers; for everyone else a missing field stays a hard error.
func optionalField(v Value, name string) (Value, error) {
	f, err := v.Field(name)
	if err != nil {
		var missing *MissingFieldError
		if errors.As(err, &missing) {
			return nil, nil
		}
		return nil, err
	}
	if f.IsNull() {
		return nil, nil
	}
	return f, nil
}

// BoolFieldOr resolves a boolean field, returning def when the field is
// absent or null.
func BoolFieldOr(v Value, name string, def bool) (bool, error) {
	f, err := optionalField(v, name)
	if err != nil || f == nil {
		return def, err
	}
	return f.BoolVal()
}

// IntFieldOr resolves an integer field, returning def when the field is
// absent or null.
func IntFieldOr(v Value, name string, def int64) (int64, error) {
	f, err := optionalField(v, name)
	if err != nil || f == nil {
		return def, err
	}
	return f.IntVal()
}

// StringFieldOr resolves a string field, returning def when the field is
// absent or null.
func StringFieldOr(v Value, name, def string) (string, error) {
	f, err := optionalField(v, name)
	if err != nil || f == nil {
		return def, err
	}
	return f.StringVal()
}

// EnumFieldOr resolves an enum field, returning def when the field is
// absent or null. A present member still matches exactly or fails.
func EnumFieldOr[T any](v Value, name, enumType string, candidates map[string]T, def T) (T, error) {
	f, err := optionalField(v, name)
	if err != nil || f == nil {
		return def, err
	}
	member, err := f.EnumMember()
	if err != nil {
		return def, err
	}
	out, ok := candidates[member]
	if !ok {
		return def, &EnumValueNotFoundError{EnumType: enumType, Member: member}
	}
	return out, nil
}

// ObjectField resolves an optional nested object field through conv. A null
// field yields (nil, nil) without invoking conv.
func ObjectField[T any](v Value, name string, conv Converter[T], nested ...AnyConverter) (*T, error) {
	f, err := v.Field(name)
	if err != nil {
		return nil, err
	}
	if f.IsNull() {
		return nil, nil
	}
	out, err := conv(f, nested)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SliceField resolves a sequence field, converting each element through
// elem. Result order matches source order exactly.
func SliceField[T any](v Value, name string, elem Converter[T], nested ...AnyConverter) ([]T, error) {
	f, err := v.Field(name)
	if err != nil {
		return nil, err
	}
	seq, err := f.Sequence()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(seq))
	for _, e := range seq {
		converted, err := elem(e, nested)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

// MapField resolves a mapping field with string keys, converting each value
// through elem. Keys are preserved verbatim.
func MapField[T any](v Value, name string, elem Converter[T], nested ...AnyConverter) (map[string]T, error) {
	f, err := v.Field(name)
	if err != nil {
		return nil, err
	}
	entries, err := f.Mapping()
	if err != nil {
		return nil, err
	}
	out := make(map[string]T, len(entries))
	for k, e := range entries {
		converted, err := elem(e, nested)
		if err != nil {
			return nil, err
		}
		out[k] = converted
	}
	return out, nil
}
