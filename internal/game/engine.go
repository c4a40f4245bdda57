// internal/game/engine.go
//
// Core game engine for a single Hit and Blow session.
// Responsibilities:
//   - Create new games with a fresh random secret (4 distinct digits, 1–6).
//   - Parse raw player input into a Guess (length, digits, range, uniqueness).
//   - Score guesses into hits and blows.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - ParseGuess is pure; only ApplyGuess mutates a Game.
//   - A finished game rejects further guesses with ErrGameOver and keeps its
//     attempt count.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"unicode/utf8"
)

var (
	// ErrInvalidGuess matches every parse rejection.
	ErrInvalidGuess = errors.New("invalid guess")

	ErrGuessLength     = fmt.Errorf("%w: need exactly %d digits", ErrInvalidGuess, CodeLen)
	ErrGuessNotDigit   = fmt.Errorf("%w: only digits are allowed", ErrInvalidGuess)
	ErrGuessOutOfRange = fmt.Errorf("%w: digits must be %d-%d", ErrInvalidGuess, MinDigit, MaxDigit)
	ErrGuessDuplicate  = fmt.Errorf("%w: digits must not repeat", ErrInvalidGuess)

	// ErrGameOver is returned when guessing after the game has finished.
	ErrGameOver = errors.New("game finished")

	// ErrInvalidSecret is returned by NewWithSecret for a code outside the rules.
	ErrInvalidSecret = errors.New("invalid secret")
)

// New constructs a new game with a freshly generated secret.
func New() *Game {
	return newGame(RandomSecret())
}

// NewWithSecret constructs a game around a fixed secret.
// The secret must obey the same rules as a guess.
func NewWithSecret(s Secret) (*Game, error) {
	if err := checkCode(s[:]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSecret, s)
	}
	return newGame(s), nil
}

func newGame(s Secret) *Game {
	return &Game{
		id:          randomID(),
		secret:      s,
		maxAttempts: MaxAttempts,
	}
}

// RandomSecret draws a secret: a uniform permutation of MinDigit..MaxDigit,
// truncated to CodeLen.
func RandomSecret() Secret {
	return secretFrom(cryptoIntN)
}

// secretFrom runs a Fisher–Yates shuffle over the alphabet using intn,
// which must return a value in [0, n).
func secretFrom(intn func(n int) int) Secret {
	var pool [MaxDigit - MinDigit + 1]Digit
	for i := range pool {
		pool[i] = MinDigit + Digit(i)
	}
	for i := len(pool) - 1; i > 0; i-- {
		j := intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	var s Secret
	copy(s[:], pool[:CodeLen])
	return s
}

// cryptoIntN returns a uniform int in [0, n) from crypto/rand,
// falling back to math/rand/v2 if the system source fails.
func cryptoIntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return mrand.IntN(n)
	}
	return int(v.Int64())
}

// ParseGuess converts raw input into a Guess.
//
// Validation rules, checked in order:
//   - exactly CodeLen characters,
//   - every character a decimal digit,
//   - every digit within MinDigit..MaxDigit,
//   - no digit repeated.
//
// ParseGuess does not trim; callers strip surrounding whitespace.
func ParseGuess(raw string) (Guess, error) {
	var g Guess
	if utf8.RuneCountInString(raw) != CodeLen {
		return g, ErrGuessLength
	}
	for i, r := range []rune(raw) {
		if r < '0' || r > '9' {
			return Guess{}, ErrGuessNotDigit
		}
		g[i] = Digit(r - '0')
	}
	if err := checkCode(g[:]); err != nil {
		return Guess{}, err
	}
	return g, nil
}

// checkCode enforces the range and uniqueness rules shared by secrets and guesses.
func checkCode(ds []Digit) error {
	var seen [MaxDigit + 1]bool
	for _, d := range ds {
		if d < MinDigit || d > MaxDigit {
			return ErrGuessOutOfRange
		}
		if seen[d] {
			return ErrGuessDuplicate
		}
		seen[d] = true
	}
	return nil
}

// Submit parses raw input and applies it.
// A parse failure returns an error matching ErrInvalidGuess and leaves the game untouched.
func (g *Game) Submit(raw string) (Result, error) {
	guess, err := ParseGuess(raw)
	if err != nil {
		return g.snapshot(), err
	}
	return g.ApplyGuess(guess)
}

// ApplyGuess scores a validated guess, mutating the game state.
//
// State transitions:
//   - Hits == CodeLen → finished, won.
//   - Else if the attempt budget is used up → finished (loss).
//
// On a finished game it returns ErrGameOver and the final snapshot without
// counting an attempt. A Guess built by hand that breaks the code rules is
// rejected the same way ParseGuess would reject it.
func (g *Game) ApplyGuess(guess Guess) (Result, error) {
	if g.finished {
		return g.snapshot(), ErrGameOver
	}
	if err := checkCode(guess[:]); err != nil {
		return g.snapshot(), err
	}
	g.attempts++

	hits, blows := scoreGuess(g.secret, guess)
	correct := hits == CodeLen
	if correct {
		g.finished, g.won = true, true
	} else if g.maxAttempts-g.attempts <= 0 {
		g.finished = true
	}

	return Result{
		Hits:     hits,
		Blows:    blows,
		Correct:  correct,
		Over:     g.finished,
		Attempts: g.attempts,
	}, nil
}

// State reports a coarse representation of the current game state.
func (g *Game) State() State {
	if g.finished {
		if g.won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// snapshot reports the current state without a score.
func (g *Game) snapshot() Result {
	return Result{Correct: g.won, Over: g.finished, Attempts: g.attempts}
}

// scoreGuess counts hits and blows in two passes.
//
// Pass 1: count exact matches and tally the secret's remaining digits.
// Pass 2: each non-hit guess digit with a remaining tally is a blow.
//
// With distinct digits on both sides this equals counting pairs i != j
// where guess[i] == secret[j].
func scoreGuess(secret Secret, guess Guess) (hits, blows int) {
	var counts [MaxDigit + 1]int
	var hit [CodeLen]bool

	for i := 0; i < CodeLen; i++ {
		if guess[i] == secret[i] {
			hits++
			hit[i] = true
		} else {
			counts[secret[i]]++
		}
	}

	for i := 0; i < CodeLen; i++ {
		if hit[i] {
			continue
		}
		if d := guess[i]; counts[d] > 0 {
			blows++
			counts[d]--
		}
	}
	return hits, blows
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
