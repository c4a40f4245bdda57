// internal/shell/messages.go
//
// Player-facing text for the terminal shell.
// Defines:
//   - The title and rules banner.
//   - Prompts, result and reveal lines.
//   - Invalid-input explanations keyed on the engine's guess errors.
//   - The session summary line.

package shell

import (
	"errors"
	"fmt"

	"github.com/robalobadob/hitblow/internal/game"
	"github.com/robalobadob/hitblow/internal/store"
)

const title = "Hit and Blow\n---------------------\n\n"

var rules = fmt.Sprintf(`Rules
  1. Guess the hidden %[1]d-digit number.
  2. Each digit is %[2]d to %[3]d and no digit appears twice.
  3. After every guess you are told your hits and blows.
  4. A hit is a right digit in the right place; a blow is a right digit in the wrong place.
  5. You have %[4]d attempts.

`, game.CodeLen, game.MinDigit, game.MaxDigit, game.MaxAttempts)

const (
	msgGameStart = "Starting a new game...\n"
	msgCorrect   = "Correct! Congratulations!\n"
	msgGameOver  = "Game over!\n"
	msgAgain     = "Play again? (y/n): "
	msgYesNo     = "Please answer y or n.\n"
	msgGoodbye   = "Thanks for playing.\n"
)

func promptGuess(attempt, limit int) string {
	return fmt.Sprintf("\nAttempt %d/%d\nEnter %d digits (%d-%d): ",
		attempt, limit, game.CodeLen, game.MinDigit, game.MaxDigit)
}

func resultLines(r game.Result, limit int) string {
	return fmt.Sprintf("Result: %d hit(s), %d blow(s)\nAttempts: %d/%d\n", r.Hits, r.Blows, r.Attempts, limit)
}

func revealLine(s game.Secret) string {
	return fmt.Sprintf("The answer was: %s\n", s)
}

func debugSecretLine(s game.Secret) string {
	return fmt.Sprintf("[debug] secret: %s\n", s)
}

// invalidLine explains why a guess was rejected.
func invalidLine(err error) string {
	why := "unrecognized input"
	switch {
	case errors.Is(err, game.ErrGuessLength):
		why = fmt.Sprintf("need exactly %d digits", game.CodeLen)
	case errors.Is(err, game.ErrGuessNotDigit):
		why = "only digits are allowed"
	case errors.Is(err, game.ErrGuessOutOfRange):
		why = fmt.Sprintf("digits must be between %d and %d", game.MinDigit, game.MaxDigit)
	case errors.Is(err, game.ErrGuessDuplicate):
		why = "the same digit was used twice"
	}
	return fmt.Sprintf("Invalid input (%s). Enter %d different digits from %d to %d.\n",
		why, game.CodeLen, game.MinDigit, game.MaxDigit)
}

func summaryLine(s store.Summary) string {
	line := fmt.Sprintf("Session: %d played, %d won, %d lost", s.Played, s.Won, s.Lost)
	if s.Abandoned > 0 {
		line += fmt.Sprintf(", %d abandoned", s.Abandoned)
	}
	return line + "\n"
}
