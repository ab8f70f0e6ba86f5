package emit

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Buffer accumulates rendered source text with indentation tracking.
// Rendering writes only here; nodes never mutate themselves.
type Buffer struct {
	sb      strings.Builder
	depth   int
	midline bool
}

// NewBuffer returns an empty buffer at indentation depth zero.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Indent increases the indentation depth for subsequent lines.
func (b *Buffer) Indent() { b.depth++ }

// Outdent decreases the indentation depth. Outdenting past zero panics:
// it is always a rendering bug.
func (b *Buffer) Outdent() {
	if b.depth == 0 {
		panic("emit: outdent below zero")
	}
	b.depth--
}

// Write appends text to the current line, emitting indentation first if the
// buffer sits at the beginning of a line.
func (b *Buffer) Write(s string) {
	if s == "" {
		return
	}
	if !b.midline {
		for i := 0; i < b.depth; i++ {
			b.sb.WriteString(indentUnit)
		}
		b.midline = true
	}
	b.sb.WriteString(s)
}

// Writef appends formatted text to the current line.
func (b *Buffer) Writef(format string, args ...any) {
	b.Write(fmt.Sprintf(format, args...))
}

// Newline terminates the current line.
func (b *Buffer) Newline() {
	b.sb.WriteByte('\n')
	b.midline = false
}

// Line writes one complete indented line. An empty string yields a blank
// line with no trailing indentation.
func (b *Buffer) Line(s string) {
	b.Write(s)
	b.Newline()
}

// Linef writes one complete formatted line.
func (b *Buffer) Linef(format string, args ...any) {
	b.Line(fmt.Sprintf(format, args...))
}

// Lines writes a multi-line literal, indenting each line. Used for literal
// method bodies supplied as strings.
func (b *Buffer) Lines(s string) {
	if s == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		if line == "" {
			b.Newline()
			continue
		}
		b.Line(line)
	}
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int { return b.sb.Len() }

// String returns the accumulated text.
func (b *Buffer) String() string { return b.sb.String() }

// Bytes returns the accumulated text as a byte slice.
func (b *Buffer) Bytes() []byte { return []byte(b.sb.String()) }
