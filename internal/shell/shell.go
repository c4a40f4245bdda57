// internal/shell/shell.go
//
// Terminal front end for the Hit and Blow engine.
// Responsibilities:
//   - Print the title and rules once per session.
//   - Run the read → parse → evaluate → display loop for each game.
//   - Ask whether to play again (y/n, re-prompting on anything else).
//   - Register every game in the session store and print a summary on exit.
//
// Notes:
//   - Input lines are trimmed and lowercased before parsing. Lines of any
//     length are accepted; an over-long one is just another invalid guess.
//   - EOF at any prompt ends the session cleanly; an unfinished game counts
//     as abandoned.
//   - Cancelling the context ends the session at the next prompt.

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hitblow/internal/game"
	"github.com/robalobadob/hitblow/internal/store"
)

// Options tune a Shell. The zero value is usable.
type Options struct {
	RevealSecret bool              // print the secret when a game starts
	Summary      bool              // print a session summary on exit
	NewGame      func() *game.Game // defaults to game.New
	Logger       *zerolog.Logger   // defaults to a disabled logger
}

// Shell drives interactive play over a reader/writer pair.
type Shell struct {
	in    io.Reader
	out   io.Writer
	store store.Store
	opts  Options
	log   zerolog.Logger

	lines chan line
	werr  error // first write error
}

type line struct {
	text string
	err  error
}

// New constructs a Shell reading player input from in and writing to out.
func New(in io.Reader, out io.Writer, st store.Store, opts Options) *Shell {
	if opts.NewGame == nil {
		opts.NewGame = game.New
	}
	l := zerolog.Nop()
	if opts.Logger != nil {
		l = *opts.Logger
	}
	return &Shell{in: in, out: out, store: st, opts: opts, log: l}
}

// Run plays games until the player declines to continue or input ends.
// It returns nil on a normal end or EOF, ctx.Err() on cancellation, and a
// wrapped error on read, write or store failures.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.print(title)
	s.print(rules)

	err := s.loop(ctx)
	if errors.Is(err, io.EOF) {
		s.print("\n")
		err = nil
	}

	s.print(msgGoodbye)
	if s.opts.Summary {
		if games, lerr := s.store.List(ctx); lerr == nil {
			sum := store.Tally(games)
			s.print(summaryLine(sum))
			s.log.Info().Int("played", sum.Played).Int("won", sum.Won).Int("lost", sum.Lost).
				Int("abandoned", sum.Abandoned).Msg("session finished")
		}
	}

	if err != nil {
		return err
	}
	if s.werr != nil {
		return fmt.Errorf("write output: %w", s.werr)
	}
	return nil
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := s.playOne(ctx); err != nil {
			return err
		}
		again, err := s.askAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// playOne runs a single game to completion.
func (s *Shell) playOne(ctx context.Context) error {
	s.print(msgGameStart)
	g := s.opts.NewGame()
	if err := s.store.Save(ctx, g); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	s.log.Debug().Str("gameId", g.ID()).Msg("game started")
	if s.opts.RevealSecret {
		s.print(debugSecretLine(g.Secret()))
	}

	for !g.Over() {
		s.print(promptGuess(g.Attempts()+1, g.MaxAttempts()))
		raw, err := s.readLine(ctx)
		if err != nil {
			return err
		}

		res, err := g.Submit(normalize(raw))
		if errors.Is(err, game.ErrInvalidGuess) {
			s.log.Debug().Str("gameId", g.ID()).Str("input", raw).Err(err).Msg("guess rejected")
			s.print(invalidLine(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("game %s: %w", g.ID(), err)
		}
		if err := s.store.Save(ctx, g); err != nil {
			return fmt.Errorf("save game: %w", err)
		}
		s.log.Debug().Str("gameId", g.ID()).Int("attempt", res.Attempts).
			Int("hits", res.Hits).Int("blows", res.Blows).Msg("guess evaluated")

		s.print(resultLines(res, g.MaxAttempts()))
		switch {
		case res.Correct:
			s.print(msgCorrect)
		case res.Over:
			s.print(msgGameOver)
			s.print(revealLine(g.Secret()))
		}
	}
	s.log.Info().Str("gameId", g.ID()).Str("state", string(g.State())).
		Int("attempts", g.Attempts()).Msg("game finished")
	return nil
}

// askAgain prompts until the player answers yes or no.
func (s *Shell) askAgain(ctx context.Context) (bool, error) {
	for {
		s.print(msgAgain)
		raw, err := s.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch normalize(raw) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.print(msgYesNo)
	}
}

// readLine returns the next input line, io.EOF at end of input,
// or ctx.Err() once ctx is cancelled.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.lines == nil {
		s.lines = make(chan line)
		go s.scan(ctx)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// scan feeds s.lines from s.in so a blocked read never holds up cancellation.
func (s *Shell) scan(ctx context.Context) {
	defer close(s.lines)
	br := bufio.NewReader(s.in)
	for {
		text, err := readFullLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case s.lines <- line{err: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
			return
		}
		select {
		case s.lines <- line{text: text}:
		case <-ctx.Done():
			return
		}
	}
}

// maxLineBytes caps how much of one input line is kept. Longer lines are
// truncated, never rejected, so they still fail parsing and get a re-prompt.
const maxLineBytes = 4096

// readFullLine reads one line of any length without its line ending.
func readFullLine(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, more, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				return string(buf), nil
			}
			return "", err
		}
		if room := maxLineBytes - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if !more {
			return string(buf), nil
		}
	}
}

func (s *Shell) print(text string) {
	if s.werr != nil {
		return
	}
	if _, err := io.WriteString(s.out, text); err != nil {
		s.werr = err
	}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
