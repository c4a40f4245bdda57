// internal/config/config.go
//
// Runtime configuration for the hitblow CLI.
// Values come from the environment, optionally seeded from a .env file in the
// working directory. Every field has a default; unparsable values fall back to it.
//
// Environment variables:
//   LOG_LEVEL              zerolog level (default "warn")
//   LOG_FORMAT             "console" or "json" (default "console")
//   NO_COLOR               any non-empty value disables coloured logs
//   HITBLOW_REVEAL_SECRET  print the secret when a game starts (default false)
//   HITBLOW_SUMMARY        print a session summary on exit (default true)

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Log output formats accepted in LOG_FORMAT.
const (
	FormatConsole = "console" // human-readable zerolog ConsoleWriter
	FormatJSON    = "json"    // one JSON object per line
)

// Config holds the resolved runtime settings.
type Config struct {
	LogLevel     string // zerolog level name, lowercased
	LogFormat    string // FormatConsole or FormatJSON
	NoColor      bool   // disable coloured console logs
	RevealSecret bool   // print the secret when a game starts
	Summary      bool   // print the session summary on exit
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	format := strings.ToLower(getEnv("LOG_FORMAT", FormatConsole))
	if format != FormatConsole && format != FormatJSON {
		format = FormatConsole
	}

	return &Config{
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat:    format,
		NoColor:      os.Getenv("NO_COLOR") != "",
		RevealSecret: getBool("HITBLOW_REVEAL_SECRET", false),
		Summary:      getBool("HITBLOW_SUMMARY", true),
	}
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
