package tint

// FormatOptions configures output formatting.
type FormatOptions struct {
	Verbose bool
	// Out styles the formatted text. Nil formats plain text.
	Out *Output
}

func (o FormatOptions) format(values ...any) string {
	if o.Out == nil {
		return Render(Tokens(values...), false)
	}
	return o.Out.Sprint(values...)
}

// FormatResult holds formatted output strings.
type FormatResult struct {
	Stdout string
	Stderr string
}

// Formatter formats command results.
type Formatter interface {
	Format(opts FormatOptions) FormatResult
}
