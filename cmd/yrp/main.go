package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"yrp-lite/cardsdb"
	"yrp-lite/replay"
)

var sectionFlags = []struct {
	name  string
	usage string
	want  replay.Want
}{
	{"names", "print the duelist names", replay.WantNames},
	{"date", "print the recording date", replay.WantDate},
	{"decks", "print each duelist's deck and the extra rule cards", replay.WantDecks},
	{"deck-names", "print each duelist's deck as card names (needs --cards-db)", replay.WantDeckNames},
	{"duel-seed", "print the duel seed", replay.WantDuelSeed},
	{"duel-options", "print the duel flags and starting options", replay.WantDuelOptions},
	{"duel-msgs", "print the decoded message stream", replay.WantDuelMsgs},
	{"duel-resps", "print the recorded player responses as JSON", replay.WantDuelResponses},
}

const undefinedFlagPrefix = "flag provided but not defined: "

func newApp(name string, stdout, stderr io.Writer) *cli.App {
	flags := make([]cli.Flag, 0, len(sectionFlags)+5)
	for _, f := range sectionFlags {
		flags = append(flags, &cli.BoolFlag{Name: f.name, Usage: f.usage})
	}
	flags = append(flags,
		&cli.StringFlag{Name: "msgs-format", Usage: "message output format: json or binary", Value: "json", EnvVars: []string{"YRP_MSGS_FORMAT"}},
		&cli.StringFlag{Name: "cards-db", Usage: "path to an EDOPro cards.cdb", EnvVars: []string{"YRP_CARDS_DB"}},
		&cli.StringFlag{Name: "tz", Usage: "IANA time zone for --date", EnvVars: []string{"YRP_TZ"}},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: "warn", EnvVars: []string{"YRP_LOG_LEVEL"}},
		&cli.StringFlag{Name: "out", Usage: "write output to `FILE` instead of stdout"},
	)

	return &cli.App{
		Name:            name,
		Usage:           "extract sections from a yrpX replay",
		ArgsUsage:       "REPLAY",
		HideHelpCommand: true,
		Flags:           flags,
		Writer:          stderr,
		ErrWriter:       stderr,
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			_ = cli.ShowAppHelp(c)
			if msg := err.Error(); strings.HasPrefix(msg, undefinedFlagPrefix) {
				return replay.BadOptionError("--" + strings.TrimLeft(strings.TrimPrefix(msg, undefinedFlagPrefix), "-"))
			}
			return err
		},
		Action: func(c *cli.Context) error {
			return extract(c, stdout)
		},
	}
}

func extract(c *cli.Context, stdout io.Writer) error {
	var want replay.Want
	for _, f := range sectionFlags {
		if c.Bool(f.name) {
			want |= f.want
		}
	}
	if want == 0 || c.NArg() == 0 {
		_ = cli.ShowAppHelp(c)
		return replay.BadOptionError("")
	}
	if c.NArg() > 1 {
		_ = cli.ShowAppHelp(c)
		return replay.BadOptionError(c.Args().Get(1))
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	setupLogging(c.App.ErrWriter, cfg.LogLevel)

	path := c.Args().First()
	data, err := readReplay(path)
	if err != nil {
		return err
	}

	opts := replay.Options{Want: want, Serializer: cfg.Serializer, Location: cfg.Location}
	if want.Has(replay.WantDeckNames) {
		if cfg.CardsDB == "" {
			return errors.New("--deck-names needs --cards-db or YRP_CARDS_DB")
		}
		db, err := cardsdb.Open(cfg.CardsDB)
		if err != nil {
			return fmt.Errorf("open cards database: %w", err)
		}
		defer db.Close()
		opts.CardNamer = db
	}

	ex, err := replay.Extract(data, opts)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("extracted")

	if cfg.Out == "" {
		_, err = ex.WriteTo(stdout)
		return err
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if _, err := ex.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func readReplay(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, replay.IoOpenError(path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, replay.IoReadError(err)
	}
	return data, nil
}

func setupLogging(w io.Writer, level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// run returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	name := "yrp"
	if len(args) > 0 {
		name = filepath.Base(args[0])
	}
	if err := newApp(name, stdout, stderr).Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %s.\n", name, strings.TrimSuffix(err.Error(), "."))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
