package tint

import (
	"strconv"
	"strings"
)

// DetectionReport describes how an Output reached its styling decision.
type DetectionReport struct {
	Mode       Mode
	Console    Console
	OSName     string
	HasConsole bool
	Enabled    bool
}

// Inspect probes env and reports the state of out.
// Probe failures are reported as no console and an empty OS name.
func Inspect(out *Output, env Environment) DetectionReport {
	mode, console, enabled := out.snapshot()
	return DetectionReport{
		Mode:       mode,
		Console:    console,
		OSName:     safeProbe(func() string { return env.OperatingSystemName() }, ""),
		HasConsole: safeProbe(func() bool { return env.HasConsole() }, false),
		Enabled:    enabled,
	}
}

func safeProbe[T any](probe func() T, fallback T) (v T) {
	defer func() {
		if recover() != nil {
			v = fallback
		}
	}()
	return probe()
}

// Format formats the report as aligned "key: value" lines.
func (r DetectionReport) Format(opts FormatOptions) FormatResult {
	var stdout strings.Builder
	w := NewIndentWriter(&stdout, "  ", opts.Out)

	w.WriteTokens(Bold, "mode:", Normal, " ", string(r.Mode))
	w.WriteTokens(Bold, "console:", Normal, " ", r.Console.String())
	if opts.Verbose {
		w.Indent()
		w.Writef("probe: %t", r.HasConsole)
		w.Writef("os: %s", r.OSName)
		w.Dedent()
	}
	w.WriteTokens(Bold, "enabled:", Normal, " ", boolElement(r.Enabled), strconv.FormatBool(r.Enabled))

	return FormatResult{Stdout: stdout.String()}
}

func boolElement(b bool) Element {
	if b {
		return Green
	}
	return Red
}
