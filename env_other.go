//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package tint

import "runtime"

func operatingSystemName() string {
	return runtime.GOOS
}
