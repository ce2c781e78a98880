package game

// Session holds the cumulative state of a play session. It is zeroed at
// start, mutated only by the game loop, and discarded at exit.
type Session struct {
	Score         int // total correct guesses
	TotalAttempts int // guesses across all rounds, losing round included
	WinStreak     int // consecutive round wins, reset to 0 on a loss
}

// Round holds the state of a single round. Created fresh per round and
// discarded once resolved.
type Round struct {
	Target       int
	AttemptsUsed int
	Outcome      Outcome
}

// Outcome is the resolution state of a round.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "in progress"
	}
}

// EndReason indicates why the session ended.
type EndReason int

const (
	// ReasonExit means the player quit voluntarily.
	ReasonExit EndReason = iota
	// ReasonLost means the player exhausted all attempts in a round.
	ReasonLost
	// ReasonChampion means the player reached the winning streak target.
	ReasonChampion
)

// String returns a human-readable description of the end reason.
func (r EndReason) String() string {
	switch r {
	case ReasonExit:
		return "exit"
	case ReasonLost:
		return "lost"
	case ReasonChampion:
		return "champion"
	default:
		return "unknown"
	}
}
