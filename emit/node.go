package emit

// Renderable is the capability shared by every node in the emission model.
// Render appends formatted source text for the node and, in aggregate
// nodes, recursively for its ordered children. Render has no side effects
// beyond the buffer write; rendering twice into two fresh buffers yields
// byte-identical text.
type Renderable interface {
	Render(b *Buffer)
}

// writeBody renders a declaration body: a literal string, a body-builder
// callback driving the in-progress buffer, or an empty body. The opening
// brace is written on the current line.
func writeBody(b *Buffer, literal string, fn func(*Buffer)) {
	if literal == "" && fn == nil {
		b.Write("{}")
		b.Newline()
		return
	}
	b.Write("{")
	b.Newline()
	b.Indent()
	if fn != nil {
		fn(b)
	} else {
		b.Lines(literal)
	}
	b.Outdent()
	b.Line("}")
}
