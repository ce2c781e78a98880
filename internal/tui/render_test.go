package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreakBar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		streak int
		target int
		width  int
		want   string
	}{
		{"empty", 0, 5, 10, "[----------] 0/5"},
		{"partial", 3, 5, 10, "[██████----] 3/5"},
		{"full", 5, 5, 10, "[██████████] 5/5"},
		{"one win", 1, 5, 10, "[██--------] 1/5"},
		{"four wins", 4, 5, 10, "[████████--] 4/5"},
		{"over target caps fill not ratio", 7, 5, 10, "[██████████] 7/5"},
		{"negative clamped", -1, 5, 10, "[----------] -1/5"},
		{"narrow width", 3, 5, 5, "[███--] 3/5"},
		{"zero target", 3, 0, 10, ""},
		{"zero width", 3, 5, 0, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StreakBar(tt.streak, tt.target, tt.width))
		})
	}
}

func TestStreakBar_FillIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := -1
	for streak := 0; streak <= 10; streak++ {
		bar := StreakBar(streak, 5, 10)
		filled := 0
		for _, r := range bar {
			if string(r) == BarFilled {
				filled++
			}
		}
		assert.GreaterOrEqual(t, filled, prev, "fill must not shrink as streak grows")
		assert.LessOrEqual(t, filled, 10)
		prev = filled
	}
}

func TestStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		codes []string
		want  string
	}{
		{"bold", "hi", []string{Bold}, Bold + "hi" + Reset},
		{"green bold", "hi", []string{FgGreen, Bold}, FgGreen + Bold + "hi" + Reset},
		{"no codes", "hi", nil, "hi"},
		{"empty codes", "hi", []string{}, "hi"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Style(tt.text, tt.codes...))
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"styled", FgGreen + Bold + "hello" + Reset, "hello"},
		{"only codes", FgRed + Reset, ""},
		{"bar unaffected", "[██████----] 3/5", "[██████----] 3/5"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripANSI(tt.input))
		})
	}
}
