package emit

// GeneratedHeader is the banner every generated file opens with.
const GeneratedHeader = "// GENERATED CODE - DO NOT MODIFY BY HAND"

// File is one generated output file: the banner, the part-of marker, then
// the generator-supplied top-level nodes in order.
type File struct {
	partOf *PartOfMarker
	nodes  []Renderable
}

// NewFile assembles a file from the build-step marker and the top-level
// nodes. The marker may be nil for standalone outputs.
func NewFile(partOf *PartOfMarker, nodes ...Renderable) *File {
	return &File{partOf: partOf, nodes: append([]Renderable(nil), nodes...)}
}

// Empty reports whether the file carries no generator-supplied nodes.
func (f *File) Empty() bool { return len(f.nodes) == 0 }

func (f *File) Render(b *Buffer) {
	b.Line(GeneratedHeader)
	b.Line("")
	if f.partOf != nil {
		f.partOf.Render(b)
		b.Line("")
	}
	for i, n := range f.nodes {
		if i > 0 {
			b.Line("")
		}
		n.Render(b)
	}
}
