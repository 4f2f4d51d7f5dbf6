package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"yrp-lite/codec"
)

// config is the resolved form of the flags and their YRP_* environment
// fallbacks.
type config struct {
	Serializer codec.Serializer
	CardsDB    string
	Location   *time.Location
	LogLevel   zerolog.Level
	Out        string
}

func loadConfig(c *cli.Context) (config, error) {
	cfg := config{
		CardsDB: strings.TrimSpace(c.String("cards-db")),
		Out:     strings.TrimSpace(c.String("out")),
	}
	var err error
	if cfg.Serializer, err = codec.ForFormat(c.String("msgs-format")); err != nil {
		return cfg, fmt.Errorf("invalid YRP_MSGS_FORMAT %q (supported: %s, %s)",
			c.String("msgs-format"), codec.FormatJSON, codec.FormatBinary)
	}
	if cfg.Location, err = locationFromString(c.String("tz")); err != nil {
		return cfg, err
	}
	if cfg.LogLevel, err = logLevelFromString(c.String("log-level")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func locationFromString(raw string) (*time.Location, error) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid YRP_TZ %q: %w", raw, err)
	}
	return loc, nil
}

func logLevelFromString(raw string) (zerolog.Level, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return zerolog.WarnLevel, nil
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.WarnLevel, fmt.Errorf("invalid YRP_LOG_LEVEL %q", raw)
	}
	return level, nil
}
