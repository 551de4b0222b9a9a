package ml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"schnapsen/bots"
)

func TestGenerateReplaysProducesParsableLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rand.txt")
	cfg := ReplayConfig{Games: 10, BaseSeed: 42, LogPath: path}
	require.NoError(t, GenerateReplays(cfg, bots.NewRand(1), bots.NewRand(2)))

	ds, err := Assemble([]Source{{Strategy: StrategyRand, Paths: []string{path}}})
	require.NoError(t, err)
	require.Greater(t, ds.Len(), 0, "ten games must record at least one decision point")
	require.Equal(t, FeatureDim, ds.Dim())
	for _, label := range ds.Labels {
		require.Equal(t, StrategyRand, label, "every record inherits the source label")
	}
}

func TestGenerateReplaysRecordsBothSidesOfSelfPlay(t *testing.T) {
	dir := t.TempDir()
	countLines := func(name string, recordBoth bool) int {
		path := filepath.Join(dir, name)
		cfg := ReplayConfig{Games: 6, BaseSeed: 3, LogPath: path, RecordBoth: recordBoth}
		require.NoError(t, GenerateReplays(cfg, bots.NewRand(1), bots.NewRand(2)))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return strings.Count(string(data), "\n")
	}

	single := countLines("one.txt", false)
	both := countLines("two.txt", true)
	require.Greater(t, both, single, "recording both seats must add the second bot's decisions")

	ds, err := Assemble([]Source{{Strategy: StrategyRand, Paths: []string{filepath.Join(dir, "two.txt")}}})
	require.NoError(t, err)
	require.Equal(t, both, ds.Len(), "every record from either seat must parse")
}

func TestGenerateReplaysDeterministic(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) []byte {
		path := filepath.Join(dir, name)
		cfg := ReplayConfig{Games: 8, BaseSeed: 7, LogPath: path}
		require.NoError(t, GenerateReplays(cfg, bots.NewBully(3), bots.NewRand(4)))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}
	require.Equal(t, run("a.txt"), run("b.txt"),
		"identical configs must produce byte-identical observation logs")
}

func TestGenerateReplaysAppendAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	cfg := ReplayConfig{Games: 4, BaseSeed: 1, LogPath: path}
	require.NoError(t, GenerateReplays(cfg, bots.NewRand(1), bots.NewRand(2)))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, GenerateReplays(cfg, bots.NewRand(1), bots.NewRand(2)))
	appended, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(appended), len(first), "a second run without overwrite must append")

	cfg.Overwrite = true
	require.NoError(t, GenerateReplays(cfg, bots.NewRand(1), bots.NewRand(2)))
	replaced, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, first, replaced, "overwrite must start the log from scratch")
}

func TestGenerateReplaysRejectsBadConfig(t *testing.T) {
	err := GenerateReplays(ReplayConfig{Games: 0, LogPath: "unused"}, bots.NewRand(1), bots.NewRand(2))
	require.Error(t, err)
}

func TestGenerateAllRunsEveryJob(t *testing.T) {
	dir := t.TempDir()
	jobs := []ReplayJob{
		{Name: "rand", Bot1: bots.NewRand(1), Bot2: bots.NewRand(2),
			Config: ReplayConfig{Games: 3, BaseSeed: 1, LogPath: filepath.Join(dir, "rand.txt")}},
		{Name: "bully", Bot1: bots.NewBully(1), Bot2: bots.NewRand(2),
			Config: ReplayConfig{Games: 3, BaseSeed: 1, LogPath: filepath.Join(dir, "bully.txt")}},
	}
	require.NoError(t, GenerateAll(jobs))
	for _, job := range jobs {
		data, err := os.ReadFile(job.Config.LogPath)
		require.NoError(t, err, "job %s must produce its log", job.Name)
		require.NotEmpty(t, data)
	}
}

func TestObservationLogLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	obsLog, err := OpenObservationLog(path)
	require.NoError(t, err)
	require.NoError(t, obsLog.AppendGame([][]float64{{0, 0.5, 1}, {1, 0, 0.25}}, true))
	require.NoError(t, obsLog.AppendGame([][]float64{{0.75, 0, 0}}, false))
	require.NoError(t, obsLog.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, []string{
		"0,0.5,1||1",
		"1,0,0.25||1",
		"0.75,0,0||0",
	}, lines)
}
