package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"schnapsen/ml"
)

var (
	replayConfigPath string
	replayOverwrite  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Generate labeled observation logs by replaying games",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(replayConfigPath)
		if err != nil {
			return err
		}
		if len(cfg.Replay.Targets) == 0 {
			return fmt.Errorf("config has no replay targets")
		}
		jobs := make([]ml.ReplayJob, 0, len(cfg.Replay.Targets))
		for _, target := range cfg.Replay.Targets {
			// Default pairing is self-play: both seats play the target
			// strategy, and both perspectives feed the labeled log.
			opponentName := cfg.Replay.Opponent
			if opponentName == "" {
				opponentName = target.Strategy
			}
			recorded, err := newBot(target.Strategy, target.Seed)
			if err != nil {
				return err
			}
			opponent, err := newBot(opponentName, target.Seed+1)
			if err != nil {
				return err
			}
			jobs = append(jobs, ml.ReplayJob{
				Name: target.Strategy,
				Bot1: recorded,
				Bot2: opponent,
				Config: ml.ReplayConfig{
					Games:      cfg.Replay.Games,
					BaseSeed:   cfg.Replay.BaseSeed,
					LogPath:    filepath.Join(cfg.Replay.OutDir, target.LogFile),
					RecordBoth: opponentName == target.Strategy,
					Overwrite:  replayOverwrite,
				},
			})
		}
		return ml.GenerateAll(jobs)
	},
}

func init() {
	replayCmd.Flags().StringVarP(&replayConfigPath, "config", "c", "pipeline.yaml", "pipeline configuration file")
	replayCmd.Flags().BoolVar(&replayOverwrite, "overwrite", false, "replace existing observation logs instead of appending")
	replayCmd.Flags().IntVar(&rdeepSamples, "rdeep-samples", 8, "rollout samples per candidate move for the rdeep strategy")
	replayCmd.Flags().IntVar(&rdeepDepth, "rdeep-depth", 6, "rollout depth in tricks for the rdeep strategy")
}
