package meta

// Kind enumerates the shapes a compile-time constant can take.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindBool
	KindDouble
	KindEnum
	KindObject
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a read-only handle to one compile-time constant as seen by the
// host's static analysis. A Value is scoped to a single analysis pass and is
// never persisted.
//
// Accessors return TypeMismatchError when the constant does not have the
// requested shape. Field returns MissingFieldError for absent fields; a
// declared field whose value is null is present with IsNull() true, which is
// distinct from absence.
type Value interface {
	Kind() Kind

	// IsNull reports whether the constant is the null value.
	IsNull() bool

	// Field returns the named field of an object constant.
	Field(name string) (Value, error)

	// Primitive accessors.
	StringVal() (string, error)
	IntVal() (int64, error)
	BoolVal() (bool, error)
	DoubleVal() (float64, error)

	// EnumMember returns the declared name of an enum constant's member.
	EnumMember() (string, error)

	// Sequence returns the elements of a list constant in source order.
	Sequence() ([]Value, error)

	// Mapping returns the entries of a map constant keyed by their verbatim
	// string keys. Iteration order is incidental; callers that care about
	// order must sort.
	Mapping() (map[string]Value, error)
}
