// Package emit models generated source artifacts as a closed set of
// renderable nodes, replacing string concatenation with a typed,
// composable intermediate representation.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Buffer (buffer.go) is an indentation-aware output buffer, the only
//     mutable participant in rendering.
//  2. Nodes (class.go, mixin.go, global.go, ...) are immutable values
//     constructed once by generator logic. Each implements Renderable and
//     appends formatted Dart-style source for itself and, recursively, its
//     ordered children.
//
// # Design Decisions
//
//   - Nodes validate their own invariants at construction; rendering cannot
//     fail and takes no locks. Rendering the same node twice into fresh
//     buffers yields byte-identical text.
//   - Order is always an explicit slice, never a set or a map, for anything
//     that affects emitted order. Fixed in-class ordering: header,
//     properties, constructors, methods.
//   - Constructors copy every caller-supplied slice; nodes exclusively own
//     their parameter and child lists after construction.
//
// # Building a Class
//
//	street, _ := emit.NewProperty(emit.Property{Name: "street", Type: "String", Modifier: emit.Final})
//	ctor, _ := emit.NewConstructor(emit.Constructor{
//	    ClassName: "Address",
//	    Const:     true,
//	    Params:    []emit.Param{{Name: "street", Named: true, Required: true, ToField: true}},
//	})
//	cls, _ := emit.NewClass(emit.Class{
//	    Name:         "Address",
//	    Properties:   []*emit.Property{street},
//	    Constructors: []*emit.Constructor{ctor},
//	})
//
//	buf := emit.NewBuffer()
//	cls.Render(buf)
package emit
