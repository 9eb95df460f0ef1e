package tint

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Output holds the styling configuration of a process: the mode, the
// console override and the detector that memoizes capability detection.
//
// A new Output starts in ModeDetect with no console override.
// It is safe for concurrent use.
type Output struct {
	mu       sync.Mutex
	mode     Mode
	console  Console
	detector *Detector

	// last is the most recent decision. It is read without mu so that
	// handlers logging during detection never wait on o.
	last atomic.Bool
}

type outputOptions struct {
	env     Environment
	log     *slog.Logger
	mode    Mode
	console Console
}

// Option configures New.
type Option func(*outputOptions)

// WithEnvironment sets the Environment probed in ModeDetect.
func WithEnvironment(env Environment) Option {
	return func(o *outputOptions) {
		o.env = env
	}
}

// WithLogger sets the logger used for detection tracing.
func WithLogger(log *slog.Logger) Option {
	return func(o *outputOptions) {
		o.log = log
	}
}

// WithMode sets the initial mode.
func WithMode(mode Mode) Option {
	return func(o *outputOptions) {
		o.mode = mode
	}
}

// WithConsole sets the initial console override.
func WithConsole(console Console) Option {
	return func(o *outputOptions) {
		o.console = console
	}
}

// New creates an Output. Without options it probes the running process.
func New(opts ...Option) *Output {
	o := outputOptions{
		env:  SystemEnvironment{},
		mode: ModeDetect,
	}
	for _, opt := range opts {
		opt(&o)
	}
	out := &Output{
		mode:     o.mode,
		console:  o.console,
		detector: NewDetector(o.env, o.log),
	}
	out.last.Store(o.mode == ModeAlways)
	return out
}

// SetMode changes the mode used by subsequent calls.
func (o *Output) SetMode(mode Mode) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mode = mode
	switch mode {
	case ModeAlways:
		o.last.Store(true)
	case ModeNever:
		o.last.Store(false)
	}
}

// Mode returns the current mode.
func (o *Output) Mode() Mode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

// SetConsole changes the console override.
// A different value discards the memoized detection result.
func (o *Output) SetConsole(console Console) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.console != console {
		o.detector.Reset()
	}
	o.console = console
}

// Console returns the current console override.
func (o *Output) Console() Console {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.console
}

// Enabled reports whether escape sequences are currently written.
func (o *Output) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled()
}

func (o *Output) enabled() bool {
	v := o.detector.Enabled(o.mode, o.console)
	o.last.Store(v)
	return v
}

// lastEnabled returns the most recent styling decision without locking.
// In ModeDetect it lags until the next call that decides.
func (o *Output) lastEnabled() bool {
	return o.last.Load()
}

// snapshot reads mode, console and the decision under one lock.
func (o *Output) snapshot() (Mode, Console, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode, o.console, o.enabled()
}

// Encode returns e as a standalone escape sequence, or "" when disabled.
func (o *Output) Encode(e Element) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return EncodeOne(e, o.enabled())
}

// Format renders tokens using the current styling decision.
func (o *Output) Format(tokens ...Token) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Render(tokens, o.enabled())
}

// Sprint renders mixed values; see Tokens for how values are interpreted.
func (o *Output) Sprint(values ...any) string {
	return o.Format(Tokens(values...)...)
}

// Detector returns the detector backing o.
func (o *Output) Detector() *Detector {
	return o.detector
}

var std = New()

// DefaultOutput returns the process-wide Output used by the package-level functions.
func DefaultOutput() *Output { return std }

// SetMode sets the mode of the default Output.
func SetMode(mode Mode) { std.SetMode(mode) }

// GetMode returns the mode of the default Output.
func GetMode() Mode { return std.Mode() }

// SetConsole sets the console override of the default Output.
func SetConsole(console Console) { std.SetConsole(console) }

// Encode encodes e with the default Output.
func Encode(e Element) string { return std.Encode(e) }

// Format renders tokens with the default Output.
func Format(tokens ...Token) string { return std.Format(tokens...) }

// Sprint renders values with the default Output.
func Sprint(values ...any) string { return std.Sprint(values...) }
