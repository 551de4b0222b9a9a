package ml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"schnapsen/game"
)

// ReplayConfig controls one replay-generation run.
type ReplayConfig struct {
	Games    int
	BaseSeed uint64
	LogPath  string
	// RecordBoth also records bot2's decision points into the log. Only
	// meaningful when both bots play the strategy the log is labeled with,
	// as in a self-play pairing.
	RecordBoth    bool
	Overwrite     bool
	ProgressEvery int
}

const defaultProgressEvery = 500

// GenerateReplays plays cfg.Games complete games between bot1 and bot2 and
// records decision points to cfg.LogPath: bot1's always, bot2's as well
// when cfg.RecordBoth is set. Game i is dealt from seed BaseSeed+i, so the
// same config reproduces the same log byte for byte.
func GenerateReplays(cfg ReplayConfig, bot1, bot2 game.Bot) error {
	if cfg.Games <= 0 {
		return fmt.Errorf("replay run needs a positive game count, got %d", cfg.Games)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return fmt.Errorf("create replay directory: %w", err)
	}
	if cfg.Overwrite {
		if err := os.Remove(cfg.LogPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove stale observation log %s: %w", cfg.LogPath, err)
		}
	}
	obsLog, err := OpenObservationLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer obsLog.Close()

	progressEvery := cfg.ProgressEvery
	if progressEvery <= 0 {
		progressEvery = defaultProgressEvery
	}

	recorder := NewDataBot(bot1, obsLog)
	side2 := bot2
	if cfg.RecordBoth {
		side2 = NewDataBot(bot2, obsLog)
	}
	recorders := []*DataBot{recorder}
	if r2, ok := side2.(*DataBot); ok {
		recorders = append(recorders, r2)
	}

	for i := 0; i < cfg.Games; i++ {
		rng := rand.New(rand.NewSource(cfg.BaseSeed + uint64(i)))
		engine := game.NewEngine()

		// Alternate who leads the opening trick so the recorded bot sees
		// both roles evenly.
		if i%2 == 0 {
			_, err = engine.PlayGame(recorder, side2, rng)
		} else {
			_, err = engine.PlayGame(side2, recorder, rng)
		}
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		for _, r := range recorders {
			if err := r.Err(); err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
		}

		if (i+1)%progressEvery == 0 {
			log.Info().Msgf("Replayed %d/%d games into %s", i+1, cfg.Games, cfg.LogPath)
		}
	}

	log.Info().Msgf("Finished %d replays: %s", cfg.Games, cfg.LogPath)
	return nil
}

// ReplayJob names one replay target: which strategy plays as the recorded
// bot, against which opponent, into which log.
type ReplayJob struct {
	Name   string
	Bot1   game.Bot
	Bot2   game.Bot
	Config ReplayConfig
}

// GenerateAll runs every job concurrently, one goroutine per target. All
// failures are collected and joined.
func GenerateAll(jobs []ReplayJob) error {
	var wg sync.WaitGroup
	errs := make([]error, len(jobs))
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job ReplayJob) {
			defer wg.Done()
			log.Info().Msgf("Generating replays for %s", job.Name)
			if err := GenerateReplays(job.Config, job.Bot1, job.Bot2); err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Name, err)
			}
		}(i, job)
	}
	wg.Wait()
	return errors.Join(errs...)
}
