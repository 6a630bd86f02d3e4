package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pawnsboard/config"
	"pawnsboard/deckfile"
	"pawnsboard/engine"
	"pawnsboard/experiments"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("pawnsboard failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pawnsboard", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	deck := fs.String("deck", "", "Deck file, overrides the config")
	red := fs.String("red", "", "Red controller: fill-first or row-score (strategy1, strategy2)")
	blue := fs.String("blue", "", "Blue controller: fill-first or row-score (strategy1, strategy2)")
	rows := fs.Int("rows", 0, "Board rows")
	cols := fs.Int("cols", 0, "Board columns")
	hand := fs.Int("hand", -1, "Hand size")
	seed := fs.Uint64("seed", 0, "Shuffle the decks with this seed")
	experiment := fs.Bool("experiment", false, "Run the configured experiment instead of a single game")
	games := fs.Int("games", -1, "Games per experiment matchup")
	level := fs.String("log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}

	// Flags override the file
	if *deck != "" {
		cfg.Deck = *deck
	}
	if *red != "" {
		cfg.Match.Red.Controller = *red
	}
	if *blue != "" {
		cfg.Match.Blue.Controller = *blue
	}
	if *rows > 0 {
		cfg.Match.Rows = *rows
	}
	if *cols > 0 {
		cfg.Match.Cols = *cols
	}
	if *hand >= 0 {
		cfg.Match.HandSize = *hand
	}
	if *seed != 0 {
		cfg.Match.Shuffle = true
		cfg.Match.Seed = *seed
	}
	if *games >= 0 {
		cfg.Experiment.Games = *games
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if cfg.Match.Red.IsHuman() || cfg.Match.Blue.IsHuman() {
		return errors.New("human players need an interactive front end; choose a strategy for both sides")
	}

	decks, err := deckfile.ReadFile(cfg.Deck)
	if err != nil {
		return err
	}

	if *experiment {
		dir, err := experiments.Run(cfg, decks)
		if err != nil {
			return err
		}
		fmt.Printf("Results written to %s\n", dir)
		return nil
	}

	m, err := engine.NewMatch(cfg.Match, decks.Red, decks.Blue)
	if err != nil {
		return err
	}
	result, err := m.Run()
	if err != nil {
		return err
	}

	fmt.Println(m.View().BoardCopy())
	fmt.Println(result.Phase.Message())
	fmt.Printf("Red %d, Blue %d after %d moves\n", result.RedScore, result.BlueScore, result.TotalMoves)
	return nil
}
