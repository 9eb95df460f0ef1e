//go:build windows

package tint

func operatingSystemName() string {
	return "Windows"
}
