// Package game implements the guessing game: session and round state, the
// round/attempt loop, and player-facing status reporting.
package game

import (
	"io"
	"os"

	"github.com/thruflo/streak/internal/logging"
	"github.com/thruflo/streak/internal/prompt"
)

// Game rules. Fixed, not configurable.
const (
	GuessMin     = 1
	GuessMax     = 10
	MaxAttempts  = 3
	StreakTarget = 5
)

// Options holds configuration for creating a Game. Zero values get
// production defaults, so tests can inject only what they need.
type Options struct {
	Input    io.Reader       // player input, defaults to os.Stdin
	Output   io.Writer       // prompts and reports, defaults to os.Stdout
	Rand     Source          // target source, defaults to a clock-seeded one
	Log      *logging.Logger // defaults to a fresh warn-level logger
	Color    bool            // enable ANSI styling in reports
	BarWidth int             // streak bar width, defaults to 10
}

// Result contains the outcome of a completed session.
type Result struct {
	Reason  EndReason
	Session Session
	Rounds  int
}

// Game runs a play session: rounds of guessing until the player becomes
// champion, loses a round, or quits.
type Game struct {
	prompter *prompt.Reader
	report   *Reporter
	rand     Source
	log      *logging.Logger
	session  Session
	rounds   int
}

// New creates a Game from the given options, applying defaults for any
// zero values.
func New(opts Options) *Game {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Rand == nil {
		opts.Rand = NewSource(0)
	}
	if opts.Log == nil {
		opts.Log = logging.New()
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = 10
	}

	return &Game{
		prompter: prompt.NewReader(opts.Input, opts.Output),
		report:   NewReporter(opts.Output, opts.Color, StreakTarget, opts.BarWidth),
		rand:     opts.Rand,
		log:      opts.Log,
	}
}

// Run executes the session until a terminal condition is met and prints
// exactly one final summary. The only returned error is an input stream
// failure; every invalid input is retried at the prompt.
func (g *Game) Run() (Result, error) {
	g.report.Welcome()

	play, err := g.prompter.AskYesNo("Do you want to play? (yes/no): ")
	if err != nil {
		return Result{}, err
	}

	reason := ReasonExit
	for play {
		round, err := g.playRound()
		if err != nil {
			return Result{}, err
		}
		g.rounds++
		g.log.Debug("round resolved",
			"round", g.rounds,
			"outcome", round.Outcome,
			"attempts", round.AttemptsUsed,
			"streak", g.session.WinStreak,
		)

		if round.Outcome == OutcomeLost {
			// Losing a single round ends the whole session.
			g.session.WinStreak = 0
			reason = ReasonLost
			break
		}

		if g.session.WinStreak >= StreakTarget {
			reason = ReasonChampion
			break
		}

		play, err = g.prompter.AskYesNo("Play again? (yes/no): ")
		if err != nil {
			return Result{}, err
		}
		if !play {
			reason = ReasonExit
		}
	}

	g.report.Final(reason, g.session)
	g.log.Debug("session ended", "reason", reason, "rounds", g.rounds,
		"score", g.session.Score, "attempts", g.session.TotalAttempts)

	return Result{Reason: reason, Session: g.session, Rounds: g.rounds}, nil
}

// playRound draws a target and runs the attempt loop. The loop only ends on
// a correct guess or after MaxAttempts wrong ones; wrong guesses get a
// directional hint and another try.
func (g *Game) playRound() (Round, error) {
	round := Round{Target: g.rand.Pick(GuessMin, GuessMax)}
	g.log.Debug("round started", "round", g.rounds+1, "target", round.Target)

	for round.AttemptsUsed < MaxAttempts {
		guess, err := g.prompter.AskGuess(GuessMin, GuessMax)
		if err != nil {
			return round, err
		}
		round.AttemptsUsed++
		g.session.TotalAttempts++

		if guess == round.Target {
			round.Outcome = OutcomeWon
			g.session.Score++
			g.session.WinStreak++
			g.report.Correct()
			g.report.Progress(g.session.Score, g.session.WinStreak)
			return round, nil
		}
		g.report.Hint(guess, round.Target)
	}

	round.Outcome = OutcomeLost
	g.report.OutOfTries(round.Target)
	return round, nil
}
