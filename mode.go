package tint

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMode is returned by ParseMode for unknown values.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidConsole is returned by ParseConsole for unknown values.
	ErrInvalidConsole = errors.New("invalid console override")
)

// Mode defines when escape sequences are written.
type Mode string

const (
	ModeDetect Mode = "detect" // Color when the output is a capable console
	ModeAlways Mode = "always" // Always color
	ModeNever  Mode = "never"  // No color
)

// ParseMode converts user input to a Mode.
// "auto" is accepted as an alias of "detect".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "detect", "auto":
		return ModeDetect, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return "", fmt.Errorf("%w: %q (want auto, detect, always or never)", ErrInvalidMode, s)
}

// Console overrides console detection.
// The zero value leaves the decision to the console probe.
type Console int

const (
	ConsoleUnset   Console = iota // Probe for a console
	ConsolePresent                // Assume a console is attached
	ConsoleAbsent                 // Assume no console
)

// ParseConsole converts user input to a Console override.
func ParseConsole(s string) (Console, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "auto":
		return ConsoleUnset, nil
	case "present", "true":
		return ConsolePresent, nil
	case "absent", "false":
		return ConsoleAbsent, nil
	}
	return ConsoleUnset, fmt.Errorf("%w: %q (want unset, present or absent)", ErrInvalidConsole, s)
}

func (c Console) String() string {
	switch c {
	case ConsolePresent:
		return "present"
	case ConsoleAbsent:
		return "absent"
	default:
		return "unset"
	}
}
