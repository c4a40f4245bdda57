// internal/store/tally.go
//
// Session summary over the games held in a Store.
// Counts games by outcome (won/lost) and reports unfinished ones as
// abandoned, for the line the shell prints on exit.

package store

import "github.com/robalobadob/hitblow/internal/game"

// Summary counts games by outcome.
type Summary struct {
	Played    int // every game started
	Won       int
	Lost      int
	Abandoned int // still playing when the session ended
}

// Tally summarizes games by their current state.
func Tally(games []*game.Game) Summary {
	var s Summary
	for _, g := range games {
		s.Played++
		switch g.State() {
		case game.StateWon:
			s.Won++
		case game.StateLost:
			s.Lost++
		default:
			s.Abandoned++
		}
	}
	return s
}
