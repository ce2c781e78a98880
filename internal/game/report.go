package game

import (
	"fmt"
	"io"

	"github.com/thruflo/streak/internal/tui"
)

// Reporter prints player-facing progress and summary messages. Emoji and
// color are cosmetic and not part of a parseable contract.
type Reporter struct {
	out          io.Writer
	color        bool
	streakTarget int
	barWidth     int
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, color bool, streakTarget, barWidth int) *Reporter {
	return &Reporter{
		out:          out,
		color:        color,
		streakTarget: streakTarget,
		barWidth:     barWidth,
	}
}

// Welcome prints the greeting banner.
func (r *Reporter) Welcome() {
	fmt.Fprintln(r.out, "🎮 Welcome to the Guessing Number Game!")
	fmt.Fprintf(r.out, "Win %d rounds in a row to become the champion.\n", r.streakTarget)
}

// Correct acknowledges a correct guess.
func (r *Reporter) Correct() {
	fmt.Fprintln(r.out, r.style("🎉 Correct!", tui.FgGreen))
}

// Hint tells the player which direction the target lies in. guess == target
// never reaches here.
func (r *Reporter) Hint(guess, target int) {
	if guess < target {
		fmt.Fprintln(r.out, r.style("⬆️  Higher!", tui.FgYellow))
	} else {
		fmt.Fprintln(r.out, r.style("⬇️  Lower!", tui.FgYellow))
	}
}

// OutOfTries reveals the target after a lost round.
func (r *Reporter) OutOfTries(target int) {
	fmt.Fprintf(r.out, "%s The number was %d.\n", r.style("😢 Out of tries!", tui.FgRed), target)
}

// Progress prints the current score and streak bar. Called immediately
// after each correct guess.
func (r *Reporter) Progress(score, streak int) {
	fmt.Fprintf(r.out, "Score: %d\n", score)
	fmt.Fprintf(r.out, "Streak: %s\n", r.bar(streak))
}

// Final prints the reason-specific session summary. A player who quit
// without playing a single round sees no stats at all.
func (r *Reporter) Final(reason EndReason, s Session) {
	switch reason {
	case ReasonChampion:
		fmt.Fprintln(r.out, r.style(fmt.Sprintf("🏆 Champion! %d wins in a row!", s.WinStreak), tui.FgBrightGreen, tui.Bold))
		r.stats(s)

	case ReasonLost:
		fmt.Fprintln(r.out, r.style("Game over!", tui.FgRed, tui.Bold))
		r.stats(s)
		if s.WinStreak < r.streakTarget {
			fmt.Fprintf(r.out, "Streak: %s\n", r.bar(s.WinStreak))
		}

	case ReasonExit:
		fmt.Fprintln(r.out, "👋 Thanks for playing, see you next time!")
		if s.TotalAttempts > 0 {
			r.stats(s)
			fmt.Fprintf(r.out, "Streak: %s\n", r.bar(s.WinStreak))
		}
	}
}

func (r *Reporter) stats(s Session) {
	fmt.Fprintf(r.out, "Final score: %d correct in %d guesses.\n", s.Score, s.TotalAttempts)
}

func (r *Reporter) bar(streak int) string {
	return tui.StreakBar(streak, r.streakTarget, r.barWidth)
}

func (r *Reporter) style(s string, codes ...string) string {
	if !r.color {
		return s
	}
	return tui.Style(s, codes...)
}
