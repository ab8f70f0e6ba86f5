package meta

// In-memory Value implementation. The bundled unitfile front end builds
// these from unit description files; tests build them directly.

type constValue struct {
	kind Kind

	str string
	num int64
	flt float64
	b   bool

	enumType   string
	enumMember string

	fields  map[string]Value
	elems   []Value
	entries map[string]Value
}

// Null returns the null constant.
func Null() Value { return &constValue{kind: KindNull} }

// String returns a string constant.
func String(s string) Value { return &constValue{kind: KindString, str: s} }

// Int returns an integer constant.
func Int(i int64) Value { return &constValue{kind: KindInt, num: i} }

// Bool returns a boolean constant.
func Bool(b bool) Value { return &constValue{kind: KindBool, b: b} }

// Double returns a floating-point constant.
func Double(f float64) Value { return &constValue{kind: KindDouble, flt: f} }

// Enum returns an enum constant for the given type and member name,
// e.g. Enum("ReportFormat", "concise").
func Enum(enumType, member string) Value {
	return &constValue{kind: KindEnum, enumType: enumType, enumMember: member}
}

// Object returns an object constant with the given named fields.
func Object(fields map[string]Value) Value {
	return &constValue{kind: KindObject, fields: fields}
}

// List returns a list constant. Element order is preserved.
func List(elems ...Value) Value {
	return &constValue{kind: KindList, elems: elems}
}

// Map returns a map constant with string keys.
func Map(entries map[string]Value) Value {
	return &constValue{kind: KindMap, entries: entries}
}

func (v *constValue) Kind() Kind   { return v.kind }
func (v *constValue) IsNull() bool { return v.kind == KindNull }

func (v *constValue) Field(name string) (Value, error) {
	if v.kind != KindObject {
		return nil, &TypeMismatchError{Want: KindObject, Got: v.kind}
	}
	f, ok := v.fields[name]
	if !ok {
		return nil, &MissingFieldError{Field: name}
	}
	return f, nil
}

func (v *constValue) StringVal() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.str, nil
}

func (v *constValue) IntVal() (int64, error) {
	if v.kind != KindInt {
		return 0, &TypeMismatchError{Want: KindInt, Got: v.kind}
	}
	return v.num, nil
}

func (v *constValue) BoolVal() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeMismatchError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

func (v *constValue) DoubleVal() (float64, error) {
	if v.kind != KindDouble {
		return 0, &TypeMismatchError{Want: KindDouble, Got: v.kind}
	}
	return v.flt, nil
}

func (v *constValue) EnumMember() (string, error) {
	if v.kind != KindEnum {
		return "", &TypeMismatchError{Want: KindEnum, Got: v.kind}
	}
	return v.enumMember, nil
}

// EnumType returns the declared enum type name of an enum constant, or the
// empty string for other kinds. Only the in-memory implementation exposes
// this; conversion matches on the member name alone.
func (v *constValue) EnumType() string { return v.enumType }

func (v *constValue) Sequence() ([]Value, error) {
	if v.kind != KindList {
		return nil, &TypeMismatchError{Want: KindList, Got: v.kind}
	}
	return v.elems, nil
}

func (v *constValue) Mapping() (map[string]Value, error) {
	if v.kind != KindMap {
		return nil, &TypeMismatchError{Want: KindMap, Got: v.kind}
	}
	return v.entries, nil
}
