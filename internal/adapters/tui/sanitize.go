package tui

import "regexp"

// reANSI matches CSI sequences and the other single-byte Fe escapes.
var reANSI = regexp.MustCompile(`\x1b(?:\[[0-?]*[ -/]*[@-~]|[@-Z\\-_])`)

// sanitize strips ANSI escape sequences from strings that came from the
// APOD API before they reach the renderer.
func sanitize(s string) string {
	return reANSI.ReplaceAllString(s, "")
}
