package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pawnsboard/config"
	"pawnsboard/deckfile"
	"pawnsboard/engine"
	"pawnsboard/experiments/metrics"
	"pawnsboard/game"
)

// Run plays every matchup of cfg.Experiment the configured number of times
// and writes the results as CSV under cfg.Experiment.OutDir. It returns the
// directory the files were written to.
func Run(cfg config.Config, decks deckfile.Decks) (string, error) {
	exp := cfg.Experiment
	count := 0
	matchups := make([]metrics.MatchupRecord, 0, len(exp.Matchups))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, mu := range exp.Matchups {
		record := metrics.MatchupRecord{ID: mi + 1, Red: mu.Red, Blue: mu.Blue, Games: exp.Games}

		log.Info().Msgf("starting matchup %d of %d between red=%s and blue=%s...", mi+1, len(exp.Matchups), mu.Red, mu.Blue)

		for i := 0; i < exp.Games; i++ {
			result, err := runGame(cfg.Match, mu, decks, i)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			switch result.Phase {
			case game.RedWins:
				record.RedWins++
			case game.BlueWins:
				record.BlueWins++
			default:
				record.Ties++
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Matchup:    record.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.Matchups), i+1, result.Winner)
		}
		matchups = append(matchups, record)
		log.Info().Msgf("completed matchup %d of %d: red %d, blue %d, ties %d", mi+1, len(exp.Matchups), record.RedWins, record.BlueWins, record.Ties)
	}

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(exp.OutDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteMatchups(matchups); err != nil {
		return "", err
	}
	log.Info().Msg("stored matchups")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays one game of a matchup. Shuffled experiments derive a
// distinct seed per game from the configured one.
func runGame(base config.Match, mu config.Matchup, decks deckfile.Decks, i int) (engine.Result, error) {
	cfg := base
	cfg.Red = config.Player{Name: "red", Controller: mu.Red}
	cfg.Blue = config.Player{Name: "blue", Controller: mu.Blue}
	if cfg.Shuffle && cfg.Seed != 0 {
		cfg.Seed += uint64(i)
	}

	m, err := engine.NewMatch(cfg, decks.Red, decks.Blue, engine.WithMetrics(metrics.NewCollector()))
	if err != nil {
		return engine.Result{}, err
	}
	return m.Run()
}
