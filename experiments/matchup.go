// Package experiments runs head-to-head matchups between strategies and
// checks win rates for statistical significance.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"schnapsen/game"
)

// MatchupConfig controls one head-to-head series.
type MatchupConfig struct {
	Name          string
	Games         int
	BaseSeed      uint64
	ProgressEvery int
}

// GameRecord captures the result of a single game in a series.
type GameRecord struct {
	ID          int
	Bot1Led     bool
	Bot1Won     bool
	GamePoints  int
	WinnerScore int
	Duration    time.Duration
}

// MatchupResult aggregates a full series.
type MatchupResult struct {
	Name    string
	Games   int
	Wins1   int
	Wins2   int
	Records []GameRecord
}

// WinRate1 is bot1's share of games won.
func (r *MatchupResult) WinRate1() float64 {
	return float64(r.Wins1) / float64(r.Games)
}

// RunMatchup plays cfg.Games complete games between bot1 and bot2, swapping
// who leads the opening trick every other game. Game i is dealt from seed
// BaseSeed+i, so a series is reproducible.
func RunMatchup(cfg MatchupConfig, bot1, bot2 game.Bot) (*MatchupResult, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("matchup %s needs a positive game count, got %d", cfg.Name, cfg.Games)
	}
	progressEvery := cfg.ProgressEvery
	if progressEvery <= 0 {
		progressEvery = 50
	}

	log.Info().Msgf("starting matchup %s: %d games", cfg.Name, cfg.Games)
	engine := game.NewEngine()
	result := &MatchupResult{Name: cfg.Name, Games: cfg.Games}
	for i := 0; i < cfg.Games; i++ {
		rng := rand.New(rand.NewSource(cfg.BaseSeed + uint64(i)))
		leader, follower := bot1, bot2
		if i%2 == 1 {
			leader, follower = bot2, bot1
		}

		start := time.Now()
		outcome, err := engine.PlayGame(leader, follower, rng)
		if err != nil {
			return nil, fmt.Errorf("matchup %s game %d: %w", cfg.Name, i, err)
		}

		bot1Won := outcome.Winner == bot1
		if bot1Won {
			result.Wins1++
		} else {
			result.Wins2++
		}
		result.Records = append(result.Records, GameRecord{
			ID:          i,
			Bot1Led:     leader == bot1,
			Bot1Won:     bot1Won,
			GamePoints:  outcome.GamePoints,
			WinnerScore: outcome.WinnerScore.Direct,
			Duration:    time.Since(start),
		})

		if (i+1)%progressEvery == 0 {
			log.Info().Msgf("matchup %s: %d of %d games finished", cfg.Name, i+1, cfg.Games)
		}
	}
	log.Info().Msgf("completed matchup %s: %d-%d", cfg.Name, result.Wins1, result.Wins2)
	return result, nil
}
