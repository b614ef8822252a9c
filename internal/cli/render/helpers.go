package render

import (
	"strings"

	"github.com/fatih/color"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite, color.Bold)
	hashStyle    = color.New(color.FgCyan)
	linkStyle    = color.New(color.FgBlue, color.Underline)
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed)
	warningStyle = color.New(color.FgYellow)
	chainHeader  = color.New(color.BgCyan, color.FgBlack)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warningStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Capitalize first letter
	if len(message) > 0 {
		message = strings.ToUpper(message[:1]) + message[1:]
	}
	return failureStyle.Sprintf("❌ %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return successStyle.Sprintf("✅ %s", message)
}

// shortAddress abbreviates a hex address for dense tables
func shortAddress(hex string) string {
	if len(hex) <= 14 {
		return hex
	}
	return hex[:8] + "…" + hex[len(hex)-6:]
}
