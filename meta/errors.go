package meta

import (
	"fmt"
	"reflect"
)

// UnregisteredTypeError reports a conversion request for a type with no
// registered converter. Not recoverable: the generator should fail the
// current declaration's generation.
type UnregisteredTypeError struct {
	Type reflect.Type
}

func (e *UnregisteredTypeError) Error() string {
	return fmt.Sprintf("no converter registered for type %s", e.Type)
}

// MissingFieldError reports a required field absent from the constant view,
// indicating a mismatch between the annotation's declared shape and what the
// host supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("constant has no field %q", e.Field)
}

// EnumValueNotFoundError reports an enum member name with no matching
// declared value, e.g. stale generated code after a rename.
type EnumValueNotFoundError struct {
	EnumType string
	Member   string
}

func (e *EnumValueNotFoundError) Error() string {
	return fmt.Sprintf("enum %s has no value named %q", e.EnumType, e.Member)
}

// TypeMismatchError reports a constant whose shape does not match the
// statically expected one, e.g. expecting a sequence and finding a scalar.
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("constant kind mismatch: want %s, got %s", e.Want, e.Got)
}
