package tint

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Environment abstracts the OS facilities used for capability detection.
type Environment interface {
	// HasConsole reports whether an interactive console is attached to
	// standard output.
	HasConsole() bool
	// OperatingSystemName returns the operating system name, e.g. "Linux".
	OperatingSystemName() string
}

// Detector decides whether escape sequences should be written.
// The detected capability is memoized until the console override changes
// or Reset is called. It is safe for concurrent use.
type Detector struct {
	Env Environment
	Log *slog.Logger

	mu       sync.Mutex
	cached   bool
	capable  bool
	cachedBy Console
}

// NewDetector creates a Detector probing env.
func NewDetector(env Environment, log *slog.Logger) *Detector {
	if log == nil {
		log = NewNopLogger()
	}
	return &Detector{Env: env, Log: log}
}

// Enabled returns the effective styling decision for mode and console.
func (d *Detector) Enabled(mode Mode, console Console) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached && d.cachedBy == console {
		return d.capable
	}
	d.capable = d.detect(console)
	d.cached = true
	d.cachedBy = console
	return d.capable
}

// SetLogger replaces the logger used for detection tracing.
func (d *Detector) SetLogger(log *slog.Logger) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Log = log
}

// Reset clears the memoized capability.
func (d *Detector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cached = false
}

func (d *Detector) detect(console Console) (capable bool) {
	log := d.Log
	if log == nil {
		log = NewNopLogger()
	}
	log = log.With(LogAttrKeyCategory.Attr(LogCategoryDetect))

	defer func() {
		if r := recover(); r != nil {
			log.Debug(fmt.Sprintf("probe failed: %v", r))
			capable = false
		}
	}()

	switch console {
	case ConsoleAbsent:
		log.Debug("console override: absent")
		return false
	case ConsoleUnset:
		if !d.Env.HasConsole() {
			log.Debug("no console attached")
			return false
		}
	}

	osName := d.Env.OperatingSystemName()
	capable = !strings.Contains(strings.ToLower(osName), "win")
	log.Debug(fmt.Sprintf("os %q capable=%t", osName, capable))
	return capable
}
