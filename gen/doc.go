// Package gen wires conversion and emission together: it defines the
// generator contract, derives output paths, and runs generators over many
// compilation units with per-declaration failure isolation.
//
// A generator reads annotation data from a host.Unit, converts it through a
// meta.Registry into a typed configuration, builds emit nodes from that
// configuration, and hands them back. The runner owns everything around
// that pure pass: the part-of marker, output path derivation, file writing,
// parallelism, and error collection.
package gen
