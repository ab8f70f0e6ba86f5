package meta

import (
	"reflect"
)

// AnyConverter reconstructs an untyped value from a constant view. The
// nested list supplies, in declaration order, the converters for the
// composite fields of the value being built; supplying the wrong count or
// order is a caller error (see Schema for the name-keyed alternative).
type AnyConverter func(v Value, nested []AnyConverter) (any, error)

// Converter reconstructs a value of type T from a constant view. Converters
// are pure functions: no side effects, no retained state.
type Converter[T any] func(v Value, nested []AnyConverter) (T, error)

// Erase adapts a typed converter to its untyped form for use in a nested
// converter list.
func Erase[T any](c Converter[T]) AnyConverter {
	return func(v Value, nested []AnyConverter) (any, error) {
		return c(v, nested)
	}
}

// Registry is an immutable mapping from a value type to its converter,
// built once per generation session via Builder and safe for concurrent
// read-only access afterwards.
type Registry struct {
	converters map[reflect.Type]AnyConverter
}

// Builder accumulates converter registrations before the registry is
// frozen. Register replaces any earlier registration for the same type.
type Builder struct {
	converters map[reflect.Type]AnyConverter
}

// NewBuilder returns an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{converters: make(map[reflect.Type]AnyConverter)}
}

// Register adds a converter for type T to the builder.
func Register[T any](b *Builder, c Converter[T]) {
	b.converters[reflect.TypeOf((*T)(nil)).Elem()] = Erase(c)
}

// Build freezes the accumulated registrations into an immutable Registry.
// The builder must not be reused afterwards.
func (b *Builder) Build() *Registry {
	frozen := make(map[reflect.Type]AnyConverter, len(b.converters))
	for t, c := range b.converters {
		frozen[t] = c
	}
	b.converters = nil
	return &Registry{converters: frozen}
}

// Lookup returns the converter registered for the given type.
func (r *Registry) Lookup(t reflect.Type) (AnyConverter, bool) {
	c, ok := r.converters[t]
	return c, ok
}

// Len returns the number of registered converters.
func (r *Registry) Len() int { return len(r.converters) }

// Convert reconstructs a value of type T from the given constant view using
// the registry's converter for T. The nested converters, if any, are handed
// through to the converter unchanged. Fails with UnregisteredTypeError when
// no converter is registered for T.
func Convert[T any](r *Registry, v Value, nested ...AnyConverter) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	c, ok := r.converters[t]
	if !ok {
		return zero, &UnregisteredTypeError{Type: t}
	}
	out, err := c(v, nested)
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		// A registered converter produced a foreign type. This is a
		// registration bug, not a constant authoring error.
		return zero, &UnregisteredTypeError{Type: t}
	}
	return typed, nil
}
