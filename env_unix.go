//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package tint

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// macOSName replaces the "Darwin" sysname, which would otherwise match "win".
const macOSName = "Mac OS X"

func operatingSystemName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return fallbackOSName(runtime.GOOS)
	}
	name := unix.ByteSliceToString(uts.Sysname[:])
	if name == "Darwin" {
		return macOSName
	}
	return name
}

func fallbackOSName(goos string) string {
	if goos == "darwin" {
		return macOSName
	}
	return goos
}
