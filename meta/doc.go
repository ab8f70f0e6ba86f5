// Package meta reconstructs typed annotation values from compile-time
// constants supplied by a host front end.
//
// # Architecture
//
// The package uses a three-layer design:
//  1. Value (value.go) is the read-only view of one compile-time constant,
//     as handed over by the host's static analysis. const.go provides the
//     in-memory implementation used by the bundled front end and by tests.
//  2. Converters (convert.go) are pure functions from a Value to a typed
//     domain object. Composite converters receive the converters for their
//     nested fields explicitly; the registry never resolves transitively.
//  3. Registry (convert.go) is an immutable type-to-converter table, built
//     once per generation session and safe for concurrent reads.
//
// # Design Decisions
//
//   - Conversion failures are static authoring errors, never transient: every
//     failure is synchronous, typed (see errors.go), and terminates only the
//     conversion of the one annotated declaration that triggered it.
//   - Nested converters are passed positionally for composite types, in the
//     order each converter documents. Schema (schema.go) offers a
//     name-keyed alternative that removes the positional coupling.
//   - Sequence conversion preserves source order exactly; declaration order
//     is meaningful to downstream emission. Mapping conversion preserves
//     keys verbatim and assumes string keys throughout.
//
// # Registering a Converter
//
//	b := meta.NewBuilder()
//	meta.Register(b, SignatureConverter)
//	meta.Register(b, OptionsConverter)
//	reg := b.Build()
//
//	opts, err := meta.Convert[Options](reg, view, meta.Erase(SignatureConverter))
package meta
