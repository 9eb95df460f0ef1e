package tint

import (
	"fmt"
	"io"
	"strings"
)

// IndentWriter writes indented lines, optionally styled through an Output.
type IndentWriter struct {
	w      io.Writer
	out    *Output
	indent string
	level  int
}

// NewIndentWriter creates a new IndentWriter with the given writer and indent string.
// The indent string is repeated for each indent level.
// out styles lines written with WriteTokens; nil writes them unstyled.
func NewIndentWriter(w io.Writer, indent string, out *Output) *IndentWriter {
	return &IndentWriter{
		w:      w,
		out:    out,
		indent: indent,
	}
}

// Indent increases the indent level by 1 and returns the writer for chaining.
func (iw *IndentWriter) Indent() *IndentWriter {
	iw.level++
	return iw
}

// Dedent decreases the indent level by 1 and returns the writer for chaining.
// The level cannot go below 0.
func (iw *IndentWriter) Dedent() *IndentWriter {
	if iw.level > 0 {
		iw.level--
	}
	return iw
}

// Level returns the current indent level.
func (iw *IndentWriter) Level() int {
	return iw.level
}

func (iw *IndentWriter) prefix() string {
	return strings.Repeat(iw.indent, iw.level)
}

// Writef writes a formatted string with the current indent prefix.
// A newline is automatically appended.
func (iw *IndentWriter) Writef(format string, args ...any) {
	fmt.Fprintf(iw.w, iw.prefix()+format+"\n", args...)
}

// Writeln writes a string with the current indent prefix.
// A newline is automatically appended.
func (iw *IndentWriter) Writeln(s string) {
	fmt.Fprintln(iw.w, iw.prefix()+s)
}

// WriteTokens renders values as one styled line with the current indent.
// The indent itself is never styled.
func (iw *IndentWriter) WriteTokens(values ...any) {
	var line string
	if iw.out != nil {
		line = iw.out.Sprint(values...)
	} else {
		line = Render(Tokens(values...), false)
	}
	fmt.Fprintln(iw.w, iw.prefix()+line)
}
