package tint

import (
	"os"

	"github.com/mattn/go-isatty"
)

// SystemEnvironment probes the running process.
type SystemEnvironment struct {
	// Out is the stream checked for a console. Nil means os.Stdout.
	Out *os.File
}

// HasConsole reports whether Out is a terminal, including Cygwin/MSYS ptys.
func (e SystemEnvironment) HasConsole() bool {
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	fd := out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// OperatingSystemName returns the kernel name reported by the platform.
func (SystemEnvironment) OperatingSystemName() string {
	return operatingSystemName()
}
