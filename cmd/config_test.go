package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"schnapsen/ml"
)

const sampleConfig = `
replay:
  games: 2000
  base_seed: 1
  out_dir: data/replays
  opponent: rand
  targets:
    - strategy: rand
      seed: 10
      log_file: rand.txt
    - strategy: bully
      seed: 20
      log_file: bully.txt
train:
  sources:
    - strategy: rand
      paths: [data/replays/rand.txt]
    - strategy: bully
      paths: [data/replays/bully.txt]
  holdout_fraction: 0.3
  split_seed: 42
  neighbors: 5
  model_path: data/model.json
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.Replay.Games)
	require.Equal(t, "rand", cfg.Replay.Opponent)
	require.Len(t, cfg.Replay.Targets, 2)
	require.Equal(t, "bully.txt", cfg.Replay.Targets[1].LogFile)
	require.Equal(t, 0.3, cfg.Train.HoldoutFraction)
	require.Equal(t, 5, cfg.Train.Neighbors)
}

func TestLoadConfigRejectsUnknownStrategy(t *testing.T) {
	bad := `
replay:
  targets:
    - strategy: alphazero
      log_file: a.txt
`
	_, err := LoadConfig(writeConfig(t, bad))
	require.Error(t, err)
}

func TestLoadConfigRejectsMissingLogFile(t *testing.T) {
	bad := `
replay:
  targets:
    - strategy: rand
`
	_, err := LoadConfig(writeConfig(t, bad))
	require.Error(t, err)
}

func TestLoadConfigRejectsBadHoldoutFraction(t *testing.T) {
	bad := `
train:
  holdout_fraction: 1.5
`
	_, err := LoadConfig(writeConfig(t, bad))
	require.Error(t, err)
}

func TestConfigSources(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	sources, err := cfg.Sources()
	require.NoError(t, err)
	require.Equal(t, []ml.Source{
		{Strategy: ml.StrategyRand, Paths: []string{"data/replays/rand.txt"}},
		{Strategy: ml.StrategyBully, Paths: []string{"data/replays/bully.txt"}},
	}, sources)
}

func TestNewBotCoversEveryStrategy(t *testing.T) {
	rdeepSamples, rdeepDepth = 2, 2
	for _, s := range ml.Strategies() {
		bot, err := newBot(s.String(), 1)
		require.NoError(t, err, "strategy %s", s)
		require.NotNil(t, bot)
	}
	_, err := newBot("alphazero", 1)
	require.Error(t, err)
}
