// Package tui provides text rendering helpers for the game's console output:
// the win-streak progress bar and ANSI styling.
package tui

import (
	"fmt"
	"strings"
)

// Bar characters.
const (
	BarFilled = "█"
	BarEmpty  = "-"
)

// ANSI escape sequences.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	FgRed    = "\033[31m"
	FgGreen  = "\033[32m"
	FgYellow = "\033[33m"
	FgCyan   = "\033[36m"

	FgBrightGreen = "\033[92m"
)

// StreakBar renders a fixed-width win-streak bar, e.g. "[██████----] 3/5".
//
// The filled section is min(streak, target) scaled to width (floor). The
// printed ratio always reports the raw streak, so values above target cap
// the fill but not the number. Deterministic, pure.
func StreakBar(streak, target, width int) string {
	if target <= 0 || width <= 0 {
		return ""
	}

	capped := streak
	if capped > target {
		capped = target
	}
	if capped < 0 {
		capped = 0
	}
	filled := capped * width / target

	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat(BarFilled, filled),
		strings.Repeat(BarEmpty, width-filled),
		streak, target)
}

// Style applies ANSI style codes to text.
func Style(s string, codes ...string) string {
	if len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// StripANSI removes ANSI escape sequences from a string.
func StripANSI(s string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range s {
		if inEscape {
			// CSI sequences end with a letter
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		if r == '\033' {
			inEscape = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
