// Package logging configures the global zerolog logger for the CLI.
// Logs always go to stderr so they never interleave with game output on stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hitblow/internal/config"
)

// Setup sets the global level and installs log.Logger from cfg.
// An unknown LOG_LEVEL leaves the level at warn.
func Setup(cfg *config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	l := New(colorable.NewColorableStderr(), cfg.LogFormat, cfg.NoColor || !tty)
	log.Logger = l
	return l
}

// New builds a logger writing to w in the given format.
func New(w io.Writer, format string, noColor bool) zerolog.Logger {
	if format == config.FormatJSON {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	return zerolog.New(cw).With().Timestamp().Logger()
}
