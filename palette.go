package tint

import (
	"fmt"
	"strings"
)

const paletteColumns = 16

// PaletteResult lists the 256 palette colors of one channel.
type PaletteResult struct {
	Channel Channel
}

// Format writes the palette in rows of 16, each index drawn in its own color.
func (r PaletteResult) Format(opts FormatOptions) FormatResult {
	var stdout strings.Builder
	w := NewIndentWriter(&stdout, "", nil)
	for row := 0; row < 256; row += paletteColumns {
		values := make([]any, 0, 2*paletteColumns)
		for code := row; code < row+paletteColumns; code++ {
			c, _ := newColor8Bit(r.Channel, code)
			values = append(values, c, fmt.Sprintf("%4d", code))
		}
		w.Writeln(opts.format(values...))
	}
	return FormatResult{Stdout: stdout.String()}
}

// NamesResult lists element names, each drawn with its own element.
type NamesResult struct {
	Names []string
}

// Format writes one name per line.
func (r NamesResult) Format(opts FormatOptions) FormatResult {
	var stdout, stderr strings.Builder
	ew := NewIndentWriter(&stderr, "", nil)
	for _, name := range r.Names {
		e, err := ParseElement(name)
		if err != nil {
			ew.Writef("%s %v", WarningLabel("warning:"), err)
			continue
		}
		stdout.WriteString(opts.format(e, name))
		stdout.WriteString("\n")
	}
	return FormatResult{Stdout: stdout.String(), Stderr: stderr.String()}
}
