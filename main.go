package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hitblow/internal/config"
	"github.com/robalobadob/hitblow/internal/logging"
	"github.com/robalobadob/hitblow/internal/shell"
	"github.com/robalobadob/hitblow/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := store.NewMemoryStore()
	sh := shell.New(os.Stdin, os.Stdout, mem, shell.Options{
		RevealSecret: cfg.RevealSecret,
		Summary:      cfg.Summary,
		Logger:       &logger,
	})

	log.Debug().Str("logFormat", cfg.LogFormat).Bool("revealSecret", cfg.RevealSecret).Msg("starting hitblow")
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatal().Err(err).Msg("session failed")
	}
}
