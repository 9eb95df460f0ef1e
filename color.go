package tint

import "github.com/fatih/color"

var (
	// CLI message prefixes printed through fatih/color.
	colorError   = color.New(color.FgRed, color.Bold).SprintFunc()
	colorWarning = color.New(color.FgYellow).SprintFunc()
)

// SyncColorPackage makes fatih/color follow the styling decision of out,
// so text colored by either package is enabled or disabled together.
// Call it again after changing the mode or console override.
func SyncColorPackage(out *Output) {
	color.NoColor = !out.Enabled()
}

// ErrorLabel returns s colored as an error label.
func ErrorLabel(s string) string {
	return colorError(s)
}

// WarningLabel returns s colored as a warning label.
func WarningLabel(s string) string {
	return colorWarning(s)
}
