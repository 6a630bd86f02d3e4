// Package config loads match and experiment settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"pawnsboard/meta"
	"pawnsboard/strategy"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Deck       string     `yaml:"deck"`
	LogLevel   string     `yaml:"log_level"`
	Match      Match      `yaml:"match"`
	Experiment Experiment `yaml:"experiment"`
}

// Player configures one side. Controller is a strategy name or "human".
type Player struct {
	Name       string `yaml:"name"`
	Controller string `yaml:"controller"`
}

type Match struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	HandSize int    `yaml:"hand_size"`
	Shuffle  bool   `yaml:"shuffle"`
	Seed     uint64 `yaml:"seed"`
	Red      Player `yaml:"red"`
	Blue     Player `yaml:"blue"`
}

// Matchup pairs two strategies by name, red first.
type Matchup struct {
	Red  string `yaml:"red"`
	Blue string `yaml:"blue"`
}

type Experiment struct {
	Name     string    `yaml:"name"`
	Games    int       `yaml:"games"`
	OutDir   string    `yaml:"out_dir"`
	Matchups []Matchup `yaml:"matchups"`
}

// Default returns the standard 5x7 game between the two built-in strategies.
func Default() Config {
	return Config{
		Deck:     meta.DECK_PATH,
		LogLevel: zerolog.InfoLevel.String(),
		Match: Match{
			Rows:     meta.ROWS,
			Cols:     meta.COLS,
			HandSize: meta.HAND_SIZE,
			Red:      Player{Name: "red", Controller: strategy.FILL_FIRST},
			Blue:     Player{Name: "blue", Controller: strategy.ROW_SCORE},
		},
		Experiment: Experiment{
			Name:   "strategies",
			Games:  meta.GAMES,
			OutDir: meta.OUT_DIR,
			Matchups: []Matchup{
				{Red: strategy.FILL_FIRST, Blue: strategy.ROW_SCORE},
				{Red: strategy.ROW_SCORE, Blue: strategy.FILL_FIRST},
			},
		},
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults and validates the result. Keys left
// out of the document keep their default values.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Experiment.Validate()
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

func (m Match) Validate() error {
	if m.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, m.Rows)
	}
	// Both edge columns are seeded, so they must differ
	if m.Cols < 2 {
		return fmt.Errorf("%w: need at least 2 columns, got %d", ErrInvalidConfig, m.Cols)
	}
	if m.HandSize < 0 {
		return fmt.Errorf("%w: hand_size must not be negative, got %d", ErrInvalidConfig, m.HandSize)
	}
	for _, p := range []Player{m.Red, m.Blue} {
		if p.IsHuman() {
			continue
		}
		if _, err := strategy.ByName(p.Controller); err != nil {
			return fmt.Errorf("%w: player %s: %w", ErrInvalidConfig, p.Name, err)
		}
	}
	return nil
}

// IsHuman reports whether the player is driven by a person.
func (p Player) IsHuman() bool {
	return strings.EqualFold(p.Controller, meta.HUMAN)
}

func (e Experiment) Validate() error {
	if e.Games < 0 {
		return fmt.Errorf("%w: games must not be negative, got %d", ErrInvalidConfig, e.Games)
	}
	for i, mu := range e.Matchups {
		for _, name := range []string{mu.Red, mu.Blue} {
			if _, err := strategy.ByName(name); err != nil {
				return fmt.Errorf("%w: matchup %d: %w", ErrInvalidConfig, i, err)
			}
		}
	}
	return nil
}
