package game

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestReporter() (*Reporter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReporter(&out, false, StreakTarget, 10), &out
}

func TestHint_Direction(t *testing.T) {
	t.Parallel()

	for g := GuessMin; g <= GuessMax; g++ {
		for target := GuessMin; target <= GuessMax; target++ {
			if g == target {
				continue
			}
			t.Run(fmt.Sprintf("guess %d target %d", g, target), func(t *testing.T) {
				r, out := newTestReporter()
				r.Hint(g, target)
				if g < target {
					assert.Contains(t, out.String(), "Higher!")
				} else {
					assert.Contains(t, out.String(), "Lower!")
				}
			})
		}
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	r, out := newTestReporter()
	r.Progress(4, 3)

	assert.Contains(t, out.String(), "Score: 4")
	assert.Contains(t, out.String(), "Streak: [██████----] 3/5")
}

func TestFinal_Champion(t *testing.T) {
	t.Parallel()

	r, out := newTestReporter()
	r.Final(ReasonChampion, Session{Score: 5, TotalAttempts: 9, WinStreak: 5})

	assert.Contains(t, out.String(), "Champion! 5 wins in a row!")
	assert.Contains(t, out.String(), "Final score: 5 correct in 9 guesses.")
	// Bar omitted, streak is already at max.
	assert.NotContains(t, out.String(), "Streak:")
}

func TestFinal_Lost(t *testing.T) {
	t.Parallel()

	r, out := newTestReporter()
	r.Final(ReasonLost, Session{Score: 2, TotalAttempts: 9, WinStreak: 0})

	assert.Contains(t, out.String(), "Game over!")
	assert.Contains(t, out.String(), "Final score: 2 correct in 9 guesses.")
	assert.Contains(t, out.String(), "Streak: [----------] 0/5")
}

func TestFinal_ExitAfterPlaying(t *testing.T) {
	t.Parallel()

	r, out := newTestReporter()
	r.Final(ReasonExit, Session{Score: 1, TotalAttempts: 3, WinStreak: 1})

	assert.Contains(t, out.String(), "Thanks for playing")
	assert.Contains(t, out.String(), "Final score: 1 correct in 3 guesses.")
	assert.Contains(t, out.String(), "Streak: [██--------] 1/5")
}

func TestFinal_ExitWithoutPlaying(t *testing.T) {
	t.Parallel()

	r, out := newTestReporter()
	r.Final(ReasonExit, Session{})

	assert.Contains(t, out.String(), "Thanks for playing")
	assert.NotContains(t, out.String(), "Final score")
	assert.NotContains(t, out.String(), "Streak:")
}

func TestReporter_ColorToggle(t *testing.T) {
	t.Parallel()

	var plain, colored bytes.Buffer
	NewReporter(&plain, false, StreakTarget, 10).Correct()
	NewReporter(&colored, true, StreakTarget, 10).Correct()

	assert.NotContains(t, plain.String(), "\033[")
	assert.Contains(t, colored.String(), "\033[")
}
