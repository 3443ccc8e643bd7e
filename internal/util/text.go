// Package util provides small text helpers shared across occ.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Preview collapses a prompt onto one line and shortens it to a display
// width budget. Wide runes count as two cells, so CJK prompts truncate
// at the same visual width as ASCII ones.
func Preview(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
