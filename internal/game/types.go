// internal/game/types.go
//
// Core type definitions for the Hit and Blow engine.
// Defines:
//   - Digit, Secret, Guess: the 4-digit codes compared each turn.
//   - State: coarse lifecycle of a game (playing/won/lost).
//   - Result: score of a single guess.
//   - Game: state for a single in-progress or finished game.

package game

import "strings"

const (
	// CodeLen is the number of digits in a secret or guess.
	CodeLen = 4
	// MinDigit and MaxDigit bound the alphabet (inclusive).
	MinDigit Digit = 1
	MaxDigit Digit = 6
	// MaxAttempts is the fixed guess budget per game.
	MaxAttempts = 10
)

// Digit is a single symbol of a code, always within MinDigit..MaxDigit once validated.
type Digit uint8

// Secret is the hidden code chosen at game start.
type Secret [CodeLen]Digit

// Guess is a validated player code for one attempt.
type Guess [CodeLen]Digit

// String renders the secret as its digits, e.g. "3152".
func (s Secret) String() string { return digitsString(s[:]) }

// String renders the guess as its digits.
func (g Guess) String() string { return digitsString(g[:]) }

func digitsString(ds []Digit) string {
	var b strings.Builder
	b.Grow(len(ds))
	for _, d := range ds {
		b.WriteByte('0' + byte(d))
	}
	return b.String()
}

// State represents the lifecycle of a game.
//   - "playing": guesses are still accepted.
//   - "won":     the secret was guessed.
//   - "lost":    the attempt budget ran out.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Result is the outcome of evaluating one guess.
type Result struct {
	Hits     int  // right digit, right position
	Blows    int  // right digit, wrong position
	Correct  bool // Hits == CodeLen
	Over     bool // game finished after this guess
	Attempts int  // attempts used including this one
}

// Game holds the state of a single Hit and Blow game.
// It is owned by one caller and is not safe for concurrent use.
type Game struct {
	id          string // random hex identifier
	secret      Secret // never changes after construction
	attempts    int    // guesses evaluated so far
	maxAttempts int    // always MaxAttempts
	finished    bool   // one-way: false -> true
	won         bool
}

// ID returns the game's random identifier.
func (g *Game) ID() string { return g.id }

// Secret returns the hidden code, for reveal-on-loss.
func (g *Game) Secret() Secret { return g.secret }

// Attempts returns the number of guesses evaluated so far.
func (g *Game) Attempts() int { return g.attempts }

// MaxAttempts returns the attempt budget.
func (g *Game) MaxAttempts() int { return g.maxAttempts }

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int { return g.maxAttempts - g.attempts }

// Over reports whether the game has finished (won or lost).
func (g *Game) Over() bool { return g.finished }

// Won reports whether the game finished with a correct guess.
func (g *Game) Won() bool { return g.won }
